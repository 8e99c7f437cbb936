package intake

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"bladeshop/internal/core/domain/model/kernel"
	"bladeshop/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession factory method.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrAwaitingPhoto is returned by Apply when the session sits at the photo
	// stage: that stage only accepts a photo attachment or an explicit skip,
	// never plain text.
	ErrAwaitingPhoto = errors.New("session is awaiting a photo or an explicit skip")

	// ErrNotAwaitingPhoto is returned by AttachPhoto and SkipPhoto when the
	// session has not reached the photo stage yet.
	ErrNotAwaitingPhoto = errors.New("session is not at the photo stage")

	// ErrSessionComplete is returned when input arrives after every field has
	// already been collected.
	ErrSessionComplete = errors.New("session has already collected every field")

	// ErrSessionIncomplete is returned by Draft when fields are still missing.
	ErrSessionIncomplete = errors.New("session has not collected every field yet")
)

// Draft holds the accumulated order fields of a completed intake session,
// ready to be handed to order creation. PhotoFileID is nil when the
// administrator skipped the photo step.
type Draft struct {
	Title          string
	Model          string
	Steel          string
	BladeFinish    string
	HandleMaterial string
	HandleMount    string
	Deadline       string
	PhotoFileID    *string
}

// Session is the ephemeral accumulator of one in-progress intake flow.
// It is keyed per (administrator, conversation) pair, lives only in memory,
// and is discarded on commit, cancellation, idle expiry, or process restart.
//
// Session follows these invariants:
//   - The stage cursor only moves forward, one field per inbound message
//   - Field text is stored verbatim; only emptiness is rejected
//   - The photo stage accepts exactly a photo or a skip
//   - Can only be created through NewSession
//
// A session is safe for concurrent use: inbound updates mutate it on
// request goroutines while the idle-expiry sweep reads TouchedAt.
type Session struct {
	// id correlates the session's log lines; it has no persistence meaning
	id kernel.UUID

	adminID int64
	chatID  int64

	// mu guards stage, draft and touchedAt
	mu sync.Mutex

	stage Stage
	draft Draft

	// touchedAt drives idle expiry; updated on every accepted input
	touchedAt time.Time

	// isConstructed ensures the session was created via NewSession
	isConstructed bool
}

// NewSession starts an intake flow for one administrator in one conversation.
// The session begins at the title stage.
//
// Parameters:
//   - adminID: the administrator's identity (must be positive)
//   - chatID: the conversation identity (must be non-zero; group chats are negative)
func NewSession(adminID, chatID int64) (*Session, error) {
	if adminID < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"adminID", fmt.Errorf("%d is not a positive identity", adminID))
	}
	if chatID == 0 {
		return nil, errs.NewValueIsRequiredError("chatID")
	}

	return &Session{
		id:            kernel.NewUUID(),
		adminID:       adminID,
		chatID:        chatID,
		stage:         StageTitle,
		touchedAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Session instance was properly constructed through NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's log-correlation identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// AdminID returns the administrator driving the flow.
func (s *Session) AdminID() int64 {
	return s.adminID
}

// ChatID returns the conversation the flow runs in.
func (s *Session) ChatID() int64 {
	return s.chatID
}

// Stage returns the current cursor position.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// TouchedAt returns the time of the last accepted input.
// Idle expiry compares against this timestamp.
func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

// IsComplete reports whether every field, including the photo decision,
// has been collected.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage == StageDone
}

// Apply consumes one text message: the text is stored verbatim under the
// current stage's field and the cursor advances.
//
// Returns:
//   - ErrAwaitingPhoto at the photo stage (text is not a photo decision)
//   - ErrSessionComplete after the flow finished
//   - a required-value error for empty text (the cursor does not move)
func (s *Session) Apply(text string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage == StageDone {
		return ErrSessionComplete
	}
	if s.stage == StagePhoto {
		return ErrAwaitingPhoto
	}
	if text == "" {
		return errs.NewValueIsRequiredError(s.stage.String())
	}

	switch s.stage {
	case StageTitle:
		s.draft.Title = text
	case StageModel:
		s.draft.Model = text
	case StageSteel:
		s.draft.Steel = text
	case StageFinish:
		s.draft.BladeFinish = text
	case StageHandleMaterial:
		s.draft.HandleMaterial = text
	case StageHandleMount:
		s.draft.HandleMount = text
	case StageDeadline:
		s.draft.Deadline = text
	default:
		return errs.NewValueIsInvalidError("stage")
	}

	return s.advance()
}

// AttachPhoto records the chat transport's photo reference and completes the
// collection. Only valid at the photo stage.
func (s *Session) AttachPhoto(fileID string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StagePhoto {
		return ErrNotAwaitingPhoto
	}
	if fileID == "" {
		return errs.NewValueIsRequiredError("fileID")
	}

	s.draft.PhotoFileID = &fileID
	return s.advance()
}

// SkipPhoto records the explicit "no photo" decision and completes the
// collection. Only valid at the photo stage.
func (s *Session) SkipPhoto() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StagePhoto {
		return ErrNotAwaitingPhoto
	}

	s.draft.PhotoFileID = nil
	return s.advance()
}

// Draft returns the collected fields.
// Returns ErrSessionIncomplete while any field is still missing.
func (s *Session) Draft() (Draft, error) {
	if err := s.Validate(); err != nil {
		return Draft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageDone {
		return Draft{}, ErrSessionIncomplete
	}

	return s.draft, nil
}

// advance moves the cursor; callers hold s.mu.
func (s *Session) advance() error {
	next, err := s.stage.Next()
	if err != nil {
		return err
	}

	s.stage = next
	s.touchedAt = time.Now()
	return nil
}
