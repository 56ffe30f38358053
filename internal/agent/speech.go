package agent

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// SpeechClient is the slice of the OpenAI client used for audio in/out.
type SpeechClient interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
	CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// Speech wraps speech-to-text and text-to-speech. The core never sees
// audio; this is the only place it exists.
type Speech struct {
	client   SpeechClient
	sttModel string
	ttsModel string
	voice    openai.SpeechVoice
}

func NewSpeech(client SpeechClient, sttModel, ttsModel, voice string) *Speech {
	if sttModel == "" {
		sttModel = "gpt-4o-mini-transcribe"
	}
	if ttsModel == "" {
		ttsModel = "gpt-4o-mini-tts"
	}
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}
	return &Speech{
		client:   client,
		sttModel: sttModel,
		ttsModel: ttsModel,
		voice:    openai.SpeechVoice(voice),
	}
}

// Transcribe turns recorded audio into text. The filename only hints the
// container format to the API.
func (s *Speech) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.sttModel,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// TranscribeFile transcribes audio already on disk (the demo loop records
// to a temp WAV first).
func (s *Speech) TranscribeFile(ctx context.Context, path string) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.sttModel,
		FilePath: path,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Synthesize renders the reply as MP3 bytes.
func (s *Speech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("empty speech input")
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.ttsModel),
		Input: text,
		Voice: s.voice,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
