package relay

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
)

const maxRelayBody = 1 << 20 // 1 MiB

// Handler relays generation requests from the client to the ML service.
// The client never talks to the ML service directly.
type Handler struct {
	mlURL string
	httpc *http.Client
}

func New(mlURL string, timeout time.Duration) *Handler {
	return &Handler{
		mlURL: mlURL,
		httpc: &http.Client{Timeout: timeout},
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/fromML", h.FromML)
}

// FromML forwards the request body to the ML service verbatim and hands
// whatever comes back to the caller. A non-JSON or empty upstream body is
// normalized to an empty object so the caller always gets JSON.
func (h *Handler) FromML(c *gin.Context) {
	logger := remote.NewLogger(c)

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRelayBody))
	if err != nil {
		logger.LogError("read relay body", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.mlURL, bytes.NewReader(body))
	if err != nil {
		logger.LogError("build ML request", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch from ML", "detail": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.httpc.Do(req)
	if err != nil {
		logger.LogError("forward to ML", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch from ML", "detail": err.Error()})
		return
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayBody))
	if err != nil {
		logger.LogError("read ML response", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch from ML", "detail": err.Error()})
		return
	}

	var data json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.LogWarnf("relay_fromml", "ML returned non-JSON body, normalizing (%d bytes)", len(raw))
		data = json.RawMessage("{}")
	}

	c.Data(http.StatusOK, "application/json", data)
}
