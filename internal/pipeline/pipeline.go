package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/edupipe/edupipe/internal/docwriter"
	"github.com/edupipe/edupipe/internal/media"
	"github.com/edupipe/edupipe/internal/pdf"
)

// Output filenames inside each run directory.
const (
	fileEditedVideo     = "edited_video.mp4"
	fileTranscriptPDF   = "transcript.pdf"
	fileTranscriptDocx  = "transcript.docx"
	fileGeneratedVideo  = "generated_video.mp4"
	fileGeneratedSlides = "generated_slides.pptx"
	fileSourceDocument  = "source.pdf"
	fileSummary         = "summary.md"
)

// Run classifies the input, creates a per-run results namespace, and
// executes the matching branch. Any converter, transcription, or
// remote-job error aborts the whole run; only a missing credential is
// a graceful skip.
func (p *implPipeline) Run(ctx context.Context, inputPath string) (Manifest, error) {
	startTime := time.Now()

	kind, err := media.Detect(inputPath)
	if err != nil {
		return nil, err
	}

	// Each run writes into its own directory so concurrent runs cannot
	// clobber each other's artifacts.
	runID := uuid.NewString()
	runDir := filepath.Join(p.cfg.Paths.Results, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	p.logger.Info(ctx, "Starting pipeline run %s (%s): %s", runID, kind, inputPath)

	var manifest Manifest
	switch kind {
	case media.KindVideo:
		manifest, err = p.runVideo(ctx, inputPath, runID, runDir)
	case media.KindDocument:
		manifest, err = p.runDocument(ctx, inputPath, runID, runDir)
	}
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Pipeline run %s completed in %s", runID, time.Since(startTime))
	return manifest, nil
}

// runVideo: reencode -> transcribe -> transcript documents -> optional
// external generation.
func (p *implPipeline) runVideo(ctx context.Context, inputPath, runID, runDir string) (Manifest, error) {
	manifest := Manifest{}

	editedPath := filepath.Join(runDir, fileEditedVideo)
	if err := p.reencode(ctx, inputPath, editedPath); err != nil {
		return nil, err
	}
	manifest.Set(SlotEditedVideo, path.Join(runID, fileEditedVideo))

	text, err := p.transcriber.Transcribe(ctx, editedPath)
	if err != nil {
		return nil, err
	}

	pdfPath := filepath.Join(runDir, fileTranscriptPDF)
	if err := pdf.FromText(text, pdfPath); err != nil {
		return nil, fmt.Errorf("render transcript pdf: %w", err)
	}
	manifest.Set(SlotTranscriptPDF, path.Join(runID, fileTranscriptPDF))

	docxPath := filepath.Join(runDir, fileTranscriptDocx)
	title := filepath.Base(inputPath)
	if err := docwriter.TranscriptToDocx(title, text, docxPath); err != nil {
		return nil, fmt.Errorf("render transcript docx: %w", err)
	}
	manifest.Set(SlotTranscriptDocx, path.Join(runID, fileTranscriptDocx))

	if err := p.generate(ctx, manifest, text, runID, runDir); err != nil {
		return nil, err
	}

	return manifest, nil
}

// runDocument: extract text -> keep a copy of the source -> optional
// external generation.
func (p *implPipeline) runDocument(ctx context.Context, inputPath, runID, runDir string) (Manifest, error) {
	manifest := Manifest{}

	text, err := pdf.ToText(inputPath)
	if err != nil {
		return nil, fmt.Errorf("extract document text: %w", err)
	}

	sourcePath := filepath.Join(runDir, fileSourceDocument)
	if err := copyFile(inputPath, sourcePath); err != nil {
		return nil, fmt.Errorf("copy source document: %w", err)
	}
	manifest.Set(SlotSourceDocument, path.Join(runID, fileSourceDocument))

	if err := p.generate(ctx, manifest, text, runID, runDir); err != nil {
		return nil, err
	}

	return manifest, nil
}

// generate runs the credential-gated external branches shared by both
// entry branches. A disabled service marks its slot absent; an enabled
// service that fails aborts the run.
func (p *implPipeline) generate(ctx context.Context, manifest Manifest, text, runID, runDir string) error {
	if p.video.Enabled() {
		dest := filepath.Join(runDir, fileGeneratedVideo)
		if err := p.video.Generate(ctx, text, dest); err != nil {
			return err
		}
		manifest.Set(SlotGeneratedVideo, path.Join(runID, fileGeneratedVideo))
	} else {
		p.logger.Info(ctx, "No video service credential, skipping video generation")
		manifest.SetAbsent(SlotGeneratedVideo)
	}

	if p.slides.Enabled() {
		dest := filepath.Join(runDir, fileGeneratedSlides)
		if err := p.slides.Generate(ctx, text, dest); err != nil {
			return err
		}
		manifest.Set(SlotGeneratedSlides, path.Join(runID, fileGeneratedSlides))
	} else {
		p.logger.Info(ctx, "No slide service credential, skipping slide generation")
		manifest.SetAbsent(SlotGeneratedSlides)
	}

	if p.summarizer != nil && p.summarizer.Enabled() {
		summary, err := p.summarizer.Summarize(ctx, text)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		dest := filepath.Join(runDir, fileSummary)
		if err := os.WriteFile(dest, []byte(summary), 0644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		manifest.Set(SlotSummary, path.Join(runID, fileSummary))
	} else {
		manifest.SetAbsent(SlotSummary)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
