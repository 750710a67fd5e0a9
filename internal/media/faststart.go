package media

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ProcessedSuffix is appended to the input path to form the remux output path.
const ProcessedSuffix = ".processed"

// Remuxer rewrites an MP4 container so the moov atom precedes the media
// data, enabling playback before the whole file has downloaded. Streams are
// copied, never re-encoded.
type Remuxer struct {
	runner ToolRunner
	ffmpeg string
}

func NewRemuxer(runner ToolRunner, config Config) *Remuxer {
	ffmpeg := config.FFmpegPath
	if ffmpeg == "" {
		ffmpeg = defaultFFmpeg
	}
	return &Remuxer{
		runner: runner,
		ffmpeg: ffmpeg,
	}
}

// FastStart writes a fast-start copy of inputPath and returns its path.
func (r *Remuxer) FastStart(ctx context.Context, inputPath string) (string, error) {
	outputPath := inputPath + ProcessedSuffix

	result, err := r.runner.Run(ctx, r.ffmpeg,
		"-i", inputPath,
		"-movflags", "faststart",
		"-map_metadata", "0",
		"-codec", "copy",
		"-f", "mp4",
		outputPath,
	)
	if err != nil {
		return "", fmt.Errorf("failed to run ffmpeg: %w", err)
	}
	if result.ExitCode != 0 {
		log.Warn().Int("exitCode", result.ExitCode).Bytes("stderr", result.Stderr).Msg("ffmpeg remux failed")
		return "", fmt.Errorf("error converting video for fast start")
	}

	return outputPath, nil
}
