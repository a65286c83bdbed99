// Package handler implements the remote store protocol served by
// cmd/kvserver, the other side of the wire the dashboard client speaks:
//
//	GET  /?action=get&key=<key>             → {"value": <string|null>}
//	POST /  {"action":"set","key":k,"value":v} → {"ok":true}
//
// Values are opaque strings (the client double-encodes JSON into them);
// the server never inspects them.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Nicolo-Giunta-Unicam/gNt-Hotel-Manager/internal/apierror"
)

const keyPrefix = "kv:"

type StoreHandler struct{ rdb *redis.Client }

func NewStoreHandler(rdb *redis.Client) *StoreHandler { return &StoreHandler{rdb: rdb} }

type setRequest struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

type getResponse struct {
	Value *string `json:"value"`
}

// Get handles `?action=get&key=...`. A missing key answers value:null;
// the protocol has no not-found status.
func (h *StoreHandler) Get(c *gin.Context) {
	if c.Query("action") != "get" {
		c.JSON(http.StatusBadRequest, apierror.New("azione non supportata"))
		return
	}
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(map[string]string{"key": "required"}))
		return
	}

	val, err := h.rdb.Get(c.Request.Context(), keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.JSON(http.StatusOK, getResponse{Value: nil})
			return
		}
		log.Error().Err(err).Str("key", key).Msg("kvserver: redis read failed")
		c.JSON(http.StatusInternalServerError, apierror.New("errore interno"))
		return
	}
	c.JSON(http.StatusOK, getResponse{Value: &val})
}

// Set handles the fire-and-forget write. Clients ignore the response body.
func (h *StoreHandler) Set(c *gin.Context) {
	var req setRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON non valido: "+err.Error()))
		return
	}
	if req.Action != "set" {
		c.JSON(http.StatusBadRequest, apierror.New("azione non supportata"))
		return
	}
	if req.Key == "" {
		c.JSON(http.StatusBadRequest, apierror.NewValidation(map[string]string{"key": "required"}))
		return
	}

	if err := h.rdb.Set(c.Request.Context(), keyPrefix+req.Key, req.Value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", req.Key).Msg("kvserver: redis write failed")
		c.JSON(http.StatusInternalServerError, apierror.New("errore interno"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Health reports liveness and redis reachability.
func (h *StoreHandler) Health(c *gin.Context) {
	if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
