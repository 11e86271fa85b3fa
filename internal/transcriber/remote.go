package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/reelscribe/internal/config"
)

// Upload is the service-side handle for an uploaded video, not yet
// guaranteed ready for generation.
type Upload struct {
	Name string
	URI  string
	MIME string
}

// State of a remote upload as reported by the service.
type State int

const (
	StateProcessing State = iota
	StateActive
	StateFailed
)

// remote is the narrow surface of the transcription service the client
// consumes: upload, readiness polling, generation, and disposal.
type remote interface {
	Upload(ctx context.Context, path string) (*Upload, error)
	State(ctx context.Context, name string) (State, error)
	Generate(ctx context.Context, prompt string, up *Upload) (string, error)
	Delete(ctx context.Context, name string) error
}

type geminiRemote struct {
	client *genai.Client
	model  string
}

func newGeminiRemote(ctx context.Context, cfg config.GeminiConfig) (*geminiRemote, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiRemote{client: client, model: cfg.Model}, nil
}

func (g *geminiRemote) Upload(ctx context.Context, path string) (*Upload, error) {
	file, err := g.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: videoMIME(path),
	})
	if err != nil {
		return nil, err
	}
	return &Upload{Name: file.Name, URI: file.URI, MIME: file.MIMEType}, nil
}

func (g *geminiRemote) State(ctx context.Context, name string) (State, error) {
	file, err := g.client.Files.Get(ctx, name, nil)
	if err != nil {
		return StateProcessing, err
	}
	switch file.State {
	case genai.FileStateActive:
		return StateActive, nil
	case genai.FileStateFailed:
		return StateFailed, nil
	default:
		return StateProcessing, nil
	}
}

func (g *geminiRemote) Generate(ctx context.Context, prompt string, up *Upload) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromURI(up.URI, up.MIME),
		}, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (g *geminiRemote) Delete(ctx context.Context, name string) error {
	_, err := g.client.Files.Delete(ctx, name, nil)
	return err
}

func videoMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mkv":
		return "video/x-matroska"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".flv":
		return "video/x-flv"
	default:
		return "video/mp4"
	}
}
