package blobgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr any
	}{
		{
			name: "valid",
			cfg:  Config{Dimensions: 2, Centroids: 2, Samples: 5},
		},
		{
			name: "minimal",
			cfg:  Config{Dimensions: 1, Centroids: 1, Samples: 1},
		},
		{
			name:    "zero dimensions",
			cfg:     Config{Dimensions: 0, Centroids: 2, Samples: 5},
			wantErr: &ErrInvalidDimension{},
		},
		{
			name:    "negative dimensions",
			cfg:     Config{Dimensions: -3, Centroids: 2, Samples: 5},
			wantErr: &ErrInvalidDimension{},
		},
		{
			name:    "zero centroids",
			cfg:     Config{Dimensions: 2, Centroids: 0, Samples: 5},
			wantErr: &ErrInvalidCentroidCount{},
		},
		{
			name:    "zero samples",
			cfg:     Config{Dimensions: 2, Centroids: 2, Samples: 0},
			wantErr: &ErrInvalidSampleCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			switch want := tt.wantErr.(type) {
			case *ErrInvalidDimension:
				require.True(t, errors.As(err, &want))
				require.Equal(t, tt.cfg.Dimensions, want.Dimensions)
			case *ErrInvalidCentroidCount:
				require.True(t, errors.As(err, &want))
				require.Equal(t, tt.cfg.Centroids, want.Centroids)
			case *ErrInvalidSampleCount:
				require.True(t, errors.As(err, &want))
				require.Equal(t, tt.cfg.Samples, want.Samples)
			}
		})
	}
}

func TestKey_Names(t *testing.T) {
	key := Config{Dimensions: 5, Centroids: 4, Samples: 1_000_000}.Key()

	require.Equal(t, "txt/data_1000000_5_4.txt", key.DataName())
	require.Equal(t, "plots/scatter_matrix_1000000_5_4.png", key.ScatterMatrixName())
	require.Equal(t, "plots/scatter_plot_1000000_5_4.png", key.ScatterPlotName())
}
