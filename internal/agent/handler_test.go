package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeSpeechClient struct {
	transcript string
	spoken     []string
}

func (f *fakeSpeechClient) CreateTranscription(
	_ context.Context,
	_ openai.AudioRequest,
) (openai.AudioResponse, error) {
	return openai.AudioResponse{Text: f.transcript}, nil
}

func (f *fakeSpeechClient) CreateSpeech(
	_ context.Context,
	req openai.CreateSpeechRequest,
) (openai.RawResponse, error) {
	f.spoken = append(f.spoken, req.Input)
	return openai.RawResponse{
		ReadCloser: io.NopCloser(bytes.NewBufferString("mp3-bytes")),
	}, nil
}

type fakeArchive struct {
	keys []string
}

func (f *fakeArchive) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	f.keys = append(f.keys, key)
	return "https://archive.test/" + key, nil
}

func setupVoiceRouter(chat ChatClient, speechClient SpeechClient, archive Archive) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	a := New(chat, "gpt-4o-mini", newTestToolbox())
	speech := NewSpeech(speechClient, "", "", "")
	handler := NewHandler(a, speech, archive)

	r.POST("/voice", handler.Voice)
	return r
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestVoice_TextBody(t *testing.T) {
	chat := &fakeChatClient{responses: []openai.ChatCompletionResponse{
		textResponse("Angel Milk Tea is $5.99 in medium."),
	}}
	speechClient := &fakeSpeechClient{}
	router := setupVoiceRouter(chat, speechClient, nil)

	body := bytes.NewBufferString(`{"text": "How much is an Angel Milk Tea?"}`)
	req := httptest.NewRequest(http.MethodPost, "/voice", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp["text"] != "Angel Milk Tea is $5.99 in medium." {
		t.Fatalf("unexpected reply text: %q", resp["text"])
	}
	if !strings.HasPrefix(resp["audio"], "data:audio/mp3;base64,") {
		t.Fatalf("expected a base64 data URL, got %q", resp["audio"])
	}
	if resp["transcription"] != "How much is an Angel Milk Tea?" {
		t.Fatalf("unexpected transcription: %q", resp["transcription"])
	}

	if len(speechClient.spoken) != 1 {
		t.Fatalf("expected one TTS call, got %d", len(speechClient.spoken))
	}
}

func TestVoice_AudioUploadTranscribesAndArchives(t *testing.T) {
	chat := &fakeChatClient{responses: []openai.ChatCompletionResponse{
		textResponse("Sure, that comes to $11.98."),
	}}
	speechClient := &fakeSpeechClient{transcript: "two medium angel milk tea"}
	archive := &fakeArchive{}
	router := setupVoiceRouter(chat, speechClient, archive)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("audio", "round1.wav")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake-wav-bytes")); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/voice", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["transcription"] != "two medium angel milk tea" {
		t.Fatalf("unexpected transcription: %q", resp["transcription"])
	}

	if len(archive.keys) != 1 {
		t.Fatalf("expected one archived object, got %d", len(archive.keys))
	}
	if !strings.HasPrefix(archive.keys[0], "voice/") || !strings.HasSuffix(archive.keys[0], ".wav") {
		t.Fatalf("unexpected archive key: %q", archive.keys[0])
	}
}

func TestVoice_NoInput(t *testing.T) {
	router := setupVoiceRouter(&fakeChatClient{}, &fakeSpeechClient{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/voice", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
