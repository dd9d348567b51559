// Package audio defines the pronunciation playback capability.
package audio

import "go.uber.org/zap"

// Speaker voices a French text for the learner. Implementations are
// fire-and-forget: the caller never waits for playback and failures stay
// inside the implementation.
type Speaker interface {
	Speak(text string)
}

// NopSpeaker ignores all playback requests.
type NopSpeaker struct{}

func (NopSpeaker) Speak(string) {}

// LogSpeaker records playback requests instead of voicing them. Used until
// a TTS backend is wired in.
type LogSpeaker struct {
	Logger *zap.Logger
}

func (s LogSpeaker) Speak(text string) {
	s.Logger.Info("speak requested", zap.String("text", text))
}
