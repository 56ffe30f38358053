package agent

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Archive stores a copy of inbound voice audio. Nil disables archiving.
type Archive interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Handler struct {
	agent   *Agent
	speech  *Speech
	archive Archive
}

func NewHandler(agent *Agent, speech *Speech, archive Archive) *Handler {
	return &Handler{agent: agent, speech: speech, archive: archive}
}

// --------------------------------------------------
// POST /voice
// --------------------------------------------------

// Voice accepts either multipart form data (an "audio" file or a "text"
// field) or a JSON body {"text": ...}. It transcribes when needed, runs
// one agent round, and returns the reply with synthesized speech.
func (h *Handler) Voice(c *gin.Context) {
	ctx := c.Request.Context()

	userText, err := h.userText(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if userText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no audio or text provided"})
		return
	}

	reply, _, err := h.agent.Reply(ctx, NewConversation(), userText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audio, err := h.speech.Synthesize(ctx, reply)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"text":          reply,
		"audio":         "data:audio/mp3;base64," + base64.StdEncoding.EncodeToString(audio),
		"transcription": userText,
	})
}

func (h *Handler) userText(c *gin.Context) (string, error) {
	contentType := c.GetHeader("Content-Type")

	if strings.Contains(contentType, "form-data") {
		if text := strings.TrimSpace(c.PostForm("text")); text != "" {
			return text, nil
		}

		file, header, err := c.Request.FormFile("audio")
		if err != nil {
			return "", nil
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}

		h.archiveAudio(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), raw)

		return h.speech.Transcribe(c.Request.Context(), bytes.NewReader(raw), header.Filename)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", nil
	}
	return strings.TrimSpace(req.Text), nil
}

// archiveAudio keeps a copy of the recording for later review. Failures
// only log; they never block the reply.
func (h *Handler) archiveAudio(ctx context.Context, filename, contentType string, raw []byte) {
	if h.archive == nil {
		return
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".wav"
	}
	key := "voice/" + uuid.New().String() + ext

	if _, err := h.archive.Upload(ctx, key, bytes.NewReader(raw), contentType); err != nil {
		log.Printf("voice archive failed: %v", err)
	}
}
