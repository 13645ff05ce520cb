package delivery

import (
	"log"
	"net/http"

	userdto "vidtube-backend/internal/users/dto"
	"vidtube-backend/internal/users/usecase"
	"vidtube-backend/pkg/apierror"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the profile endpoints
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func respondError(c *gin.Context, err error) {
	status, message := apierror.StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": message})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req userdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.GetString("userID"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		file = nil
	}

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), c.GetString("userID"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateCover(c *gin.Context) {
	file, err := c.FormFile("coverImage")
	if err != nil {
		file = nil
	}

	user, err := h.userUsecase.UpdateCover(c.Request.Context(), c.GetString("userID"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	entries, err := h.userUsecase.WatchHistory(c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

func (h *UserHandler) AddWatchHistory(c *gin.Context) {
	videoID := c.Param("videoId")
	if err := h.userUsecase.AddWatchHistory(c.GetString("userID"), videoID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "watch history recorded"})
}
