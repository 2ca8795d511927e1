package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	lb "github.com/matchup-app/matchup-backend/lobby"
)

type LobbyService interface {
	GetLobbies(ctx context.Context) ([]lb.Lobby, error)
	FindLobbyByID(ctx context.Context, id string) (lb.Lobby, error)
	CreateLobby(ctx context.Context, l lb.Lobby, creator lb.Member) (lb.Lobby, error)
	JoinLobby(ctx context.Context, id string, m lb.Member) error
	LeaveLobby(ctx context.Context, id string, m lb.Member) (deleted bool, err error)
}

type LobbyHandler struct {
	service LobbyService
}

func NewLobbyHandler(service LobbyService) *LobbyHandler {
	return &LobbyHandler{service: service}
}

// Register mounts the lobby routes. Reads are public; mutations require
// the caller to be authenticated.
func (h *LobbyHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", authRequired, h.Create)
	rg.POST("/:id/join", authRequired, h.Join)
	rg.DELETE("/:id/leave", authRequired, h.Leave)
}

func (h *LobbyHandler) List(c *gin.Context) {
	if lobbies, err := h.service.GetLobbies(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve lobbies",
		})
	} else {
		c.IndentedJSON(http.StatusOK, lobbies)
	}
}

func (h *LobbyHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	lobby, err := h.service.FindLobbyByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		respondLobbyError(c, err, "failed to fetch lobby")
		return
	}

	c.IndentedJSON(http.StatusOK, lobby)
}

func (h *LobbyHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(lb.Member)

	var lobby lb.Lobby

	if err := c.BindJSON(&lobby); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
			"code":  lb.CodeInvalidArgument,
		})
		return
	}

	inserted, err := h.service.CreateLobby(c.Request.Context(), lobby, user)

	if err != nil {
		c.Error(err)
		respondLobbyError(c, err, "failed to create lobby")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *LobbyHandler) Join(c *gin.Context) {
	id := c.Param("id")
	user := c.MustGet("user").(lb.Member)

	err := h.service.JoinLobby(c.Request.Context(), id, user)

	if err != nil {
		c.Error(err)
		respondLobbyError(c, err, "failed to join lobby")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "joined lobby"})
}

func (h *LobbyHandler) Leave(c *gin.Context) {
	id := c.Param("id")
	user := c.MustGet("user").(lb.Member)

	deleted, err := h.service.LeaveLobby(c.Request.Context(), id, user)

	if err != nil {
		c.Error(err)
		respondLobbyError(c, err, "failed to leave lobby")
		return
	}

	if deleted {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "lobby deleted"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "left lobby"})
}

// respondLobbyError maps domain sentinels to a status plus a stable wire
// code; fallback is what the generic message describes.
func respondLobbyError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, lb.ErrLobbyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "lobby not found", "code": lb.CodeLobbyNotFound})
	case errors.Is(err, lb.ErrLobbyFull):
		c.JSON(http.StatusBadRequest, gin.H{"error": "lobby is full", "code": lb.CodeLobbyFull})
	case errors.Is(err, lb.ErrAlreadyJoined):
		c.JSON(http.StatusBadRequest, gin.H{"error": "already joined this lobby", "code": lb.CodeAlreadyJoined})
	case errors.Is(err, lb.ErrNotAParticipant):
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a participant of this lobby", "code": lb.CodeNotAParticipant})
	case errors.Is(err, lb.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": lb.CodeInvalidArgument})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
