package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool

	// Out and Err default to os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

func (l *Logger) Infof(msg string, args ...any) {
	if l == nil {
		return
	}
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.stdout(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l == nil {
		return
	}
	if l.Debug {
		fmt.Fprintf(l.stderr(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(l.stderr(), color.YellowString("[warn] ")+msg+"\n", args...)
}

func (l *Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.stderr(), color.RedString("[error] ")+msg+"\n", args...)
}

func (l *Logger) stdout() io.Writer {
	if l == nil || l.Out == nil {
		return os.Stdout
	}
	return l.Out
}

func (l *Logger) stderr() io.Writer {
	if l == nil || l.Err == nil {
		return os.Stderr
	}
	return l.Err
}
