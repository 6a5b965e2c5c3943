package specdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastranslator/model"
)

const minimalSpec = `
openapi: "3.0.3"
info:
  title: Widgets
  version: "1.0.0"
paths:
  /widgets:
    get:
      operationId: listWidgets
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Widget"
        default:
          description: unexpected error
components:
  schemas:
    Widget:
      type: object
      required:
        - name
      properties:
        name:
          type: string
        tags:
          type: array
          items:
            type: string
`

func writeTempSpec(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndDecode_MinimalSpec(t *testing.T) {
	path := writeTempSpec(t, minimalSpec)

	parsed, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, parsed.Path)

	doc, err := Decode(parsed)
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Widgets", doc.Info.Title)

	pathRef, ok := doc.Paths.Get("/widgets")
	require.True(t, ok)
	require.NotNil(t, pathRef.Item)
	require.NotNil(t, pathRef.Item.Get)
	assert.Equal(t, "listWidgets", pathRef.Item.Get.OperationID)

	resp := pathRef.Item.Get.Responses
	require.NotNil(t, resp.Default)
	assert.Equal(t, "unexpected error", resp.Default.Item.Description)
	okResp, ok := resp.Codes.Get("200")
	require.True(t, ok)
	assert.Equal(t, "ok", okResp.Item.Description)

	mt, ok := okResp.Item.Content.Get("application/json")
	require.True(t, ok)
	require.NotNil(t, mt.Schema)
	assert.True(t, mt.Schema.IsRef())
	assert.Equal(t, "#/components/schemas/Widget", mt.Schema.Ref)

	widgetRef, ok := doc.Components.Schemas.Get("Widget")
	require.True(t, ok)
	widget := widgetRef.Item
	assert.Equal(t, model.KindObject, widget.Kind)
	require.NotNil(t, widget.Object)
	assert.Equal(t, []string{"name"}, widget.Object.Required)

	nameProp, ok := widget.Object.Properties.Get("name")
	require.True(t, ok)
	assert.Equal(t, model.KindString, nameProp.Item.Kind)

	tagsProp, ok := widget.Object.Properties.Get("tags")
	require.True(t, ok)
	assert.Equal(t, model.KindArray, tagsProp.Item.Kind)
	assert.Equal(t, model.KindString, tagsProp.Item.Array.Items.Item.Kind)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
