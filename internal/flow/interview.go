package flow

import "errors"

// CallState enumerates the voice interview call lifecycle.
type CallState int

const (
	CallInactive CallState = iota
	CallConnecting
	CallActive
	CallFinished
)

func (s CallState) String() string {
	switch s {
	case CallInactive:
		return "inactive"
	case CallConnecting:
		return "connecting"
	case CallActive:
		return "active"
	case CallFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event types emitted by the voice call provider. The flow only mirrors
// these; it never initiates anything beyond the connect and stop below.
const (
	EventCallStart   = "call-start"
	EventSpeechStart = "speech-start"
	EventSpeechEnd   = "speech-end"
	EventTranscript  = "transcript"
	EventCallEnd     = "call-end"
	EventError       = "error"
)

// TranscriptFinal marks a completed utterance; partial transcripts are
// dropped.
const TranscriptFinal = "final"

// ErrUnknownEvent reports a provider event type outside the modeled set.
var ErrUnknownEvent = errors.New("unknown interview event type")

// CallEvent is one asynchronous event from the voice provider.
type CallEvent struct {
	Type           string `json:"type"`
	Role           string `json:"role,omitempty"`
	Transcript     string `json:"transcript,omitempty"`
	TranscriptType string `json:"transcript_type,omitempty"`
	Message        string `json:"message,omitempty"`
}

// Message is one saved transcript line.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InterviewFlow mirrors the provider's call lifecycle:
// Inactive -> Connecting -> Active -> Finished. An error while connecting is
// the one rollback, back to Inactive.
type InterviewFlow struct {
	ID       string    `json:"id"`
	State    CallState `json:"state"`
	Speaking bool      `json:"speaking"`
	Messages []Message `json:"messages,omitempty"`
}

func NewInterviewFlow(id string) *InterviewFlow {
	return &InterviewFlow{ID: id, State: CallInactive}
}

// Start requests the connection. A finished call can be restarted.
func (f *InterviewFlow) Start() error {
	if f.State != CallInactive && f.State != CallFinished {
		return transitionError("interview", f.State.String(), "start")
	}
	f.Speaking = false
	f.Messages = nil
	f.State = CallConnecting
	return nil
}

// Stop ends the call from the user's side; the only modeled cancellation.
func (f *InterviewFlow) Stop() error {
	if f.State != CallConnecting && f.State != CallActive {
		return transitionError("interview", f.State.String(), "stop")
	}
	f.Speaking = false
	f.State = CallFinished
	return nil
}

// Apply folds one provider event into the flow.
func (f *InterviewFlow) Apply(ev CallEvent) error {
	switch ev.Type {
	case EventCallStart:
		if f.State != CallConnecting {
			return transitionError("interview", f.State.String(), EventCallStart)
		}
		f.State = CallActive
		return nil

	case EventSpeechStart, EventSpeechEnd:
		if f.State != CallActive {
			return transitionError("interview", f.State.String(), ev.Type)
		}
		f.Speaking = ev.Type == EventSpeechStart
		return nil

	case EventTranscript:
		if f.State != CallActive {
			return transitionError("interview", f.State.String(), EventTranscript)
		}
		if ev.TranscriptType == TranscriptFinal && ev.Transcript != "" {
			f.Messages = append(f.Messages, Message{Role: ev.Role, Content: ev.Transcript})
		}
		return nil

	case EventCallEnd:
		if f.State != CallActive && f.State != CallConnecting {
			return transitionError("interview", f.State.String(), EventCallEnd)
		}
		f.Speaking = false
		f.State = CallFinished
		return nil

	case EventError:
		if f.State == CallConnecting {
			f.State = CallInactive
		}
		return nil

	default:
		return ErrUnknownEvent
	}
}

// LastMessage returns the newest transcript line, if any.
func (f *InterviewFlow) LastMessage() (Message, bool) {
	if len(f.Messages) == 0 {
		return Message{}, false
	}
	return f.Messages[len(f.Messages)-1], true
}
