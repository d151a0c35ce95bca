package notification

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/KasumiMercury/primind-sleep-remind/internal/domain"
)

type osascriptNotifier struct {
	path string
}

func newPlatformNotifier() Notifier {
	path, err := exec.LookPath("osascript")
	if err != nil {
		return nil
	}

	return &osascriptNotifier{path: path}
}

func (n *osascriptNotifier) Notify(ctx context.Context, content domain.NotificationContent, channel domain.ChannelConfig) error {
	script := fmt.Sprintf("display notification %s with title %s",
		strconv.Quote(content.Body), strconv.Quote(content.Title))

	if channel.Sound != "" {
		script += " sound name " + strconv.Quote(soundName(channel))
	}

	if out, err := exec.CommandContext(ctx, n.path, "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}

	return nil
}

func (n *osascriptNotifier) IsSupported() bool {
	return n.path != ""
}

func soundName(channel domain.ChannelConfig) string {
	if channel.Alarm {
		return "Glass"
	}

	return "default"
}
