package usecase

import (
	"context"

	"quicktask/internal/model"
	"quicktask/internal/planner"
)

// ValidateEdited checks a batch the user edited before saving. Every failing record
// is reported; nothing is returned unless the whole batch is valid.
func (uc *implUseCase) ValidateEdited(ctx context.Context, sc model.Scope, input planner.ValidateEditedInput) (planner.ValidateEditedOutput, error) {
	if !sc.IsAuthenticated() {
		return planner.ValidateEditedOutput{}, planner.ErrUnauthenticated
	}
	if input.Tasks == nil {
		return planner.ValidateEditedOutput{}, planner.ErrMissingTasks
	}

	drafts, err := planner.ValidateBatch(input.Tasks)
	if err != nil {
		uc.l.Debugf(ctx, "ValidateEdited: user=%s rejected: %v", sc.UserID, err)
		return planner.ValidateEditedOutput{}, err
	}

	return planner.ValidateEditedOutput{Tasks: drafts}, nil
}
