package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pairsync/internal/models"
)

func TestValidateAction(t *testing.T) {
	tests := []struct {
		name    string
		action  models.Action
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid create",
			action: models.Action{
				ID:         "a1",
				Type:       models.LogActionCreate,
				Collection: "invoices",
				Payload:    json.RawMessage(`{"id":"x"}`),
			},
			wantErr: false,
		},
		{
			name: "valid delete",
			action: models.Action{
				ID:         "a2",
				Type:       models.LogActionDelete,
				Collection: "invoices",
				EntityID:   "x",
			},
			wantErr: false,
		},
		{
			name: "valid full replace",
			action: models.Action{
				ID:          "a3",
				FullReplace: true,
				State:       models.NewSnapshot(),
			},
			wantErr: false,
		},
		{
			name: "valid unknown type - opaque to the store",
			action: models.Action{
				ID:   "a4",
				Type: "NAVIGATE",
			},
			wantErr: false,
		},
		{
			name: "invalid - full replace without state",
			action: models.Action{
				ID:          "a5",
				FullReplace: true,
			},
			wantErr: true,
			errMsg:  "carries no state",
		},
		{
			name: "invalid - create without collection",
			action: models.Action{
				ID:      "a6",
				Type:    models.LogActionCreate,
				Payload: json.RawMessage(`{"id":"x"}`),
			},
			wantErr: true,
			errMsg:  "misses collection",
		},
		{
			name: "invalid - update without payload",
			action: models.Action{
				ID:         "a7",
				Type:       models.LogActionUpdate,
				Collection: "invoices",
			},
			wantErr: true,
			errMsg:  "misses payload",
		},
		{
			name: "invalid - restore with malformed payload",
			action: models.Action{
				ID:         "a8",
				Type:       models.LogActionRestore,
				Collection: "invoices",
				Payload:    json.RawMessage(`not json`),
			},
			wantErr: true,
			errMsg:  "failed to unmarshal",
		},
		{
			name: "invalid - create with entity without id",
			action: models.Action{
				ID:         "a9",
				Type:       models.LogActionCreate,
				Collection: "invoices",
				Payload:    json.RawMessage(`{"amount":1}`),
			},
			wantErr: true,
			errMsg:  "entity without id",
		},
		{
			name: "invalid - delete without collection",
			action: models.Action{
				ID:       "a10",
				Type:     models.LogActionDelete,
				EntityID: "x",
			},
			wantErr: true,
			errMsg:  "misses collection",
		},
		{
			name: "invalid - delete without entity id",
			action: models.Action{
				ID:         "a11",
				Type:       models.LogActionDelete,
				Collection: "invoices",
			},
			wantErr: true,
			errMsg:  "misses entity id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAction(tt.action)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePeerID(t *testing.T) {
	tests := []struct {
		name    string
		peerID  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid uuid",
			peerID:  "b2f7c3c8-1f6c-4a29-bd2e-5d8f3f6f2a11",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			peerID:  "",
			wantErr: true,
			errMsg:  "cannot be empty",
		},
		{
			name:    "invalid - not a uuid",
			peerID:  "not-a-uuid",
			wantErr: true,
			errMsg:  "must be a UUID",
		},
		{
			name:    "invalid - truncated uuid",
			peerID:  "b2f7c3c8-1f6c-4a29-bd2e",
			wantErr: true,
			errMsg:  "must be a UUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePeerID(tt.peerID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
