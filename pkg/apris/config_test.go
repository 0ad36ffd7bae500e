package apris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/lwmacct/251219-go-pkg-apris/pkg/apris"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *apris.Config)
		errMsg string
	}{
		{name: "default", mutate: func(*apris.Config) {}},
		{name: "base too small", mutate: func(c *apris.Config) { c.Base = 1 }, errMsg: "base 1"},
		{name: "base too large", mutate: func(c *apris.Config) { c.Base = 37 }, errMsg: "base 37"},
		{name: "unset marker", mutate: func(c *apris.Config) { c.Capital = 0 }, errMsg: "capital character is unset"},
		{name: "duplicate markers", mutate: func(c *apris.Config) { c.Separation = '%' }, errMsg: "control and separation"},
		{name: "digit marker", mutate: func(c *apris.Config) { c.Separation = '7' }, errMsg: "collides"},
		{name: "sign marker", mutate: func(c *apris.Config) { c.Alt = '-' }, errMsg: "collides"},
		{name: "letter marker in base 36", mutate: func(c *apris.Config) { c.Base = 36; c.Alt = 'z' }, errMsg: "collides"},
		{name: "letter marker in base 10", mutate: func(c *apris.Config) { c.Alt = 'z' }},
		{name: "inverted limits", mutate: func(c *apris.Config) { c.LowerLimit, c.UpperLimit = 5, 4 }, errMsg: "control limits"},
		{name: "negative lower limit", mutate: func(c *apris.Config) { c.LowerLimit = -1 }, errMsg: "control limits"},
		{name: "bad global alt", mutate: func(c *apris.Config) { c.GlobalAlt = -3 }, errMsg: "global alt"},
		{name: "zero max depth", mutate: func(c *apris.Config) { c.MaxDepth = 0 }, errMsg: "max depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := apris.DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, apris.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	cfg := apris.DefaultConfig()
	cfg.Control = '§'
	cfg.GlobalAlt = apris.AltFlip
	cfg.Locale = language.Turkish
	cfg.Base = 16

	s := apris.SettingsFrom(cfg)
	assert.Equal(t, "§", s.Control)
	assert.Equal(t, "flip", s.GlobalAlt)
	assert.Equal(t, "tr", s.Locale)

	back, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, "tr", back.Locale.String())
	back.Locale = cfg.Locale
	assert.Equal(t, cfg, back)

	def, err := apris.DefaultSettings().Config()
	require.NoError(t, err)
	assert.Equal(t, apris.DefaultConfig(), def)
}

func TestSettings_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *apris.Settings)
		errMsg string
	}{
		{name: "multi char marker", mutate: func(s *apris.Settings) { s.Control = "%%" }, errMsg: "control"},
		{name: "empty marker", mutate: func(s *apris.Settings) { s.Alt = "" }, errMsg: "alt"},
		{name: "bad locale", mutate: func(s *apris.Settings) { s.Locale = "not a locale!" }, errMsg: "locale"},
		{name: "bad global alt", mutate: func(s *apris.Settings) { s.GlobalAlt = "sometimes" }, errMsg: "global alt"},
		{name: "validation still runs", mutate: func(s *apris.Settings) { s.Base = 99 }, errMsg: "base 99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := apris.DefaultSettings()
			tt.mutate(&s)

			_, err := s.Config()
			require.ErrorIs(t, err, apris.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseGlobalAlt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: apris.AltNormal},
		{in: "normal", want: apris.AltNormal},
		{in: " Flip ", want: apris.AltFlip},
		{in: "0", want: 0},
		{in: "3", want: 3},
		{in: "-1", want: apris.AltNormal},
		{in: "-5", wantErr: true},
		{in: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := apris.ParseGlobalAlt(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, apris.ErrInvalidConfig)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, apris.FormatGlobalAlt(got)))
		})
	}
}

func mustParse(t *testing.T, s string) int {
	t.Helper()

	n, err := apris.ParseGlobalAlt(s)
	require.NoError(t, err)

	return n
}
