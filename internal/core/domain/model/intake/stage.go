package intake

import (
	"fmt"

	"bladeshop/internal/pkg/errs"
)

// Stage represents the cursor of the intake flow: which order field the
// administrator is expected to supply next. It implements a strictly linear
// state machine with one inbound message consumed per stage:
//
//	title -> model -> steel -> finish -> handle material -> handle mount
//	      -> deadline -> photo -> done
//
// The seven text stages accept any non-empty text verbatim. The photo stage
// accepts either a photo attachment or an explicit skip; it is the only stage
// with two exits, and both lead to the terminal done stage.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StageTitle waits for the order title.
	StageTitle

	// StageModel waits for the knife model.
	StageModel

	// StageSteel waits for the steel grade.
	StageSteel

	// StageFinish waits for the blade finish.
	StageFinish

	// StageHandleMaterial waits for the handle material.
	StageHandleMaterial

	// StageHandleMount waits for the handle mount type.
	StageHandleMount

	// StageDeadline waits for the deadline text.
	StageDeadline

	// StagePhoto waits for an optional photo attachment or an explicit skip.
	StagePhoto

	// StageDone is the terminal stage: every field has been collected and the
	// session is ready to commit.
	StageDone
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:        "unknown",
		StageTitle:          "title",
		StageModel:          "model",
		StageSteel:          "steel",
		StageFinish:         "finish",
		StageHandleMaterial: "handle_material",
		StageHandleMount:    "handle_mount",
		StageDeadline:       "deadline",
		StagePhoto:          "photo",
		StageDone:           "done",
	}
}

// getStagePrompts returns the question the bot sends when entering each stage.
// The wording mirrors the workshop's conversational script.
func getStagePrompts() map[Stage]string {
	return map[Stage]string{
		StageTitle:          "Название заказа:",
		StageModel:          "Модель ножа:",
		StageSteel:          "Марка стали:",
		StageFinish:         "Финиш клинка:",
		StageHandleMaterial: "Материал рукояти:",
		StageHandleMount:    "Тип монтажа рукояти:",
		StageDeadline:       "Дедлайн (YYYY-MM-DD):",
		StagePhoto:          "Прикрепи фото или напиши /skip",
	}
}

// Validate checks if the Stage value is valid.
// Valid stages are StageTitle through StageDone; StageUnknown is invalid.
func (s Stage) Validate() error {
	if s < StageTitle || s > StageDone {
		return errs.NewValueIsInvalidErrorWithCause("stage", fmt.Errorf("%d is not a valid stage", int(s)))
	}
	return nil
}

// String returns the short name of the stage, used in logs.
// It implements the fmt.Stringer interface and is safe to call on any Stage
// value, including invalid ones.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Prompt returns the question the bot asks when this stage becomes current.
// The terminal stage has no prompt and returns an empty string.
func (s Stage) Prompt() string {
	return getStagePrompts()[s]
}

// Next returns the stage that follows this one in the linear flow.
//
// Returns:
//   - (next stage, nil) for StageTitle through StagePhoto
//   - (0, error) for StageDone and invalid stages
func (s Stage) Next() (Stage, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == StageDone {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is the terminal stage", s.String()),
		)
	}

	return s + 1, nil
}
