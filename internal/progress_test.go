package internal

import (
	"context"
	"errors"
	"testing"
)

func TestShowProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		fn      func() error
		wantErr bool
	}{
		{
			name:    "successful function",
			message: "Restoring",
			fn: func() error {
				return nil
			},
			wantErr: false,
		},
		{
			name:    "function with error",
			message: "Restoring with error",
			fn: func() error {
				return errors.New("backend unreachable")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgress(ctx, tt.message, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
