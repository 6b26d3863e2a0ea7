package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// replayEvent is one scripted pointer event. Delay is the pause before
// the event is delivered, mirroring the cadence of a real drag.
type replayEvent struct {
	Action  string        `yaml:"action"` // press | move | release
	X       int           `yaml:"x"`
	Y       int           `yaml:"y"`
	DelayMS int           `yaml:"delay-ms"`
	delay   time.Duration `yaml:"-"`
}

// replayScript is a yaml-scripted gesture sequence for demos and
// debugging: the feeder injects it into the running program as mouse
// messages.
type replayScript struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Events []replayEvent `yaml:"events"`
}

func loadReplayScript(path string) (*replayScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load replay script: %w", err)
	}

	var script replayScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse replay script %q: %w", path, err)
	}

	for i := range script.Events {
		e := &script.Events[i]
		switch e.Action {
		case "press", "move", "release":
		default:
			return nil, fmt.Errorf("replay script %q: event %d has unknown action %q", path, i, e.Action)
		}
		if e.DelayMS < 0 {
			return nil, fmt.Errorf("replay script %q: event %d has negative delay", path, i)
		}
		e.delay = time.Duration(e.DelayMS) * time.Millisecond
	}

	return &script, nil
}

// mouseMsg translates a scripted event into the message the container
// would receive from a real pointer.
func (e replayEvent) mouseMsg() tea.MouseMsg {
	msg := tea.MouseMsg{X: e.X, Y: e.Y}
	switch e.Action {
	case "press":
		msg.Action = tea.MouseActionPress
		msg.Button = tea.MouseButtonLeft
	case "move":
		msg.Action = tea.MouseActionMotion
	case "release":
		msg.Action = tea.MouseActionRelease
	}
	return msg
}

// sender is the p.Send surface of a running program.
type sender interface {
	Send(msg tea.Msg)
}

// feedReplay delivers the scripted events in order, pausing per event.
// It returns when the script is exhausted or done closes.
func feedReplay(done <-chan struct{}, p sender, script *replayScript) error {
	if script.Width > 0 && script.Height > 0 {
		p.Send(tea.WindowSizeMsg{Width: script.Width, Height: script.Height})
	}

	for _, e := range script.Events {
		if e.delay > 0 {
			select {
			case <-done:
				return nil
			case <-time.After(e.delay):
			}
		}
		p.Send(e.mouseMsg())
	}
	return nil
}
