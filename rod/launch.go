package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
)

// session is one launched browser process and its CDP connection. Every
// fetch gets its own session so nothing survives between fetches.
type session struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// newLauncher configures the browser process with the flags that keep it
// from looking automated and from throttling background work.
func (f *Fetcher) newLauncher() *launcher.Launcher {
	l := launcher.New().
		Headless(f.headless).
		NoSandbox(f.noSandbox).
		Leakless(true)

	if f.browserBin != "" {
		l = l.Bin(f.browserBin)
	}

	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("window-size"), fmt.Sprintf("%d,%d", f.viewportWidth, f.viewportHeight))
	l.Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Set("disable-popup-blocking").
		Set("disable-extensions").
		Set("no-first-run")

	return l
}

// launch starts a browser and connects to it. The caller must Close the
// returned session.
func (f *Fetcher) launch(ctx context.Context) (*session, error) {
	l := f.newLauncher().Context(ctx)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		l.Cleanup()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &session{launcher: l, browser: browser}, nil
}

// Close shuts the browser down, kills the process and removes its profile
// directory. It runs every step even when an earlier one fails.
func (s *session) Close() error {
	err := s.browser.Close()
	s.launcher.Kill()
	s.launcher.Cleanup()
	return err
}
