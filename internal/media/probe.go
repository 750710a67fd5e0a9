package media

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
)

const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"

	defaultFFprobe = "ffprobe"
	defaultFFmpeg  = "ffmpeg"
)

type Config struct {
	FFprobePath string `mapstructure:"ffprobe_path"`
	FFmpegPath  string `mapstructure:"ffmpeg_path"`
}

// Inspector asks ffprobe for the dimensions of the first video stream.
type Inspector struct {
	runner  ToolRunner
	ffprobe string
}

func NewInspector(runner ToolRunner, config Config) *Inspector {
	ffprobe := config.FFprobePath
	if ffprobe == "" {
		ffprobe = defaultFFprobe
	}
	return &Inspector{
		runner:  runner,
		ffprobe: ffprobe,
	}
}

type probeStream struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

func (i *Inspector) Dimensions(ctx context.Context, filePath string) (int, int, error) {
	result, err := i.runner.Run(ctx, i.ffprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "json",
		filePath,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}
	if result.ExitCode != 0 {
		return 0, 0, fmt.Errorf("error inspecting aspect ratio: %s", result.Stderr)
	}

	var probed probeOutput
	if err := json.Unmarshal(result.Stdout, &probed); err != nil {
		return 0, 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if len(probed.Streams) == 0 {
		return 0, 0, fmt.Errorf("no video stream found")
	}

	stream := probed.Streams[0]
	if stream.Width == 0 || stream.Height == 0 {
		return 0, 0, fmt.Errorf("missing aspect ratio information")
	}

	return stream.Width, stream.Height, nil
}

// Orientation buckets a frame size for use as a storage key prefix. The
// integer division deliberately matches the upstream behavior: any ratio in
// [1, 2) counts as landscape, everything else as portrait, including
// ultra-wide ratios of 2 and above.
func Orientation(width, height int) string {
	if width/height == 1 {
		return OrientationLandscape
	}
	return OrientationPortrait
}
