package logger

import (
	"time"

	"github.com/deppfellow/persons-api/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rotatingFile is a lumberjack log file that is also rotated at every local
// midnight, keeping one file per day.
type rotatingFile struct {
	*lumberjack.Logger

	stop chan struct{}
	done chan struct{}
}

func newRotatingFile(cfg config.LogFileConfig) *rotatingFile {
	f := &rotatingFile{
		Logger: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxAgeDays,
			LocalTime:  true,
		},
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go f.rotateDaily()

	return f
}

func (f *rotatingFile) rotateDaily() {
	defer close(f.done)

	for {
		timer := time.NewTimer(time.Until(nextMidnight(time.Now())))

		select {
		case <-timer.C:
			_ = f.Rotate()
		case <-f.stop:
			timer.Stop()
			return
		}
	}
}

// Close stops the daily rotation and closes the current file.
func (f *rotatingFile) Close() error {
	close(f.stop)
	<-f.done

	return f.Logger.Close()
}

// nextMidnight returns the start of the day after t, in t's location.
func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
