package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cathode-keys/pkg/models"
)

func TestRenderSecrets(t *testing.T) {
	got, err := RenderSecrets(models.Keys{APIKey: "abc123", CrashlyticsKey: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, wantSecrets, string(got))
}

func TestRenderManifest(t *testing.T) {
	got, err := RenderManifest(models.Keys{APIKey: "ignored", CrashlyticsKey: models.DefaultCrashlyticsKey})
	require.NoError(t, err)
	assert.Equal(t, wantManifestDefault, string(got))
}

func TestRender_Verbatim(t *testing.T) {
	tests := []struct {
		name   string
		keys   models.Keys
		render func(models.Keys) ([]byte, error)
		want   string
	}{
		{
			name:   "xml-unsafe api key",
			keys:   models.Keys{APIKey: `a<b>&"c'`},
			render: RenderSecrets,
			want:   `<string name="apikey">a<b>&"c'</string>`,
		},
		{
			name:   "template syntax in api key",
			keys:   models.Keys{APIKey: "{{.CrashlyticsKey}}"},
			render: RenderSecrets,
			want:   `<string name="apikey">{{.CrashlyticsKey}}</string>`,
		},
		{
			name:   "quote in crashlytics key",
			keys:   models.Keys{CrashlyticsKey: `dead"beef`},
			render: RenderManifest,
			want:   `android:value="dead"beef"/>`,
		},
		{
			name:   "empty api key",
			keys:   models.Keys{},
			render: RenderSecrets,
			want:   `<string name="apikey"></string>`,
		},
		{
			name:   "non-ascii crashlytics key",
			keys:   models.Keys{CrashlyticsKey: "ключ"},
			render: RenderManifest,
			want:   `android:value="ключ"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.render(tt.keys)
			require.NoError(t, err)
			assert.Contains(t, string(got), tt.want)
		})
	}
}
