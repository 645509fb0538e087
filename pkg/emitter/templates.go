package emitter

import (
	"bytes"
	"fmt"
	"text/template"

	"cathode-keys/pkg/models"
)

// text/template does not escape, so keys land in the XML exactly as given.
var (
	secretsTemplate = template.Must(template.New("secrets.xml").Parse(`<?xml version="1.0" encoding="utf-8"?>
<resources>
  <string name="apikey">{{.APIKey}}</string>
</resources>
`))

	manifestTemplate = template.Must(template.New("AndroidManifest.xml").Parse(`<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    package="net.simonvt.cathode">
  <application>
    <meta-data
        android:name="com.crashlytics.ApiKey"
        android:value="{{.CrashlyticsKey}}"/>
  </application>
</manifest>
`))
)

// RenderSecrets renders the string resource file holding the API key
func RenderSecrets(keys models.Keys) ([]byte, error) {
	return render(secretsTemplate, keys)
}

// RenderManifest renders the release manifest fragment holding the Crashlytics key
func RenderManifest(keys models.Keys) ([]byte, error) {
	return render(manifestTemplate, keys)
}

func render(tmpl *template.Template, keys models.Keys) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, keys); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
