package formstate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

func TestLoadDefinitionFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signup.yaml")
	doc := "name: signup\nfields:\n  - name: email\n    required: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	def, err := LoadDefinition(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if def.Name != "signup" || len(def.Fields) != 1 {
		t.Fatalf("definition mismatch: %+v", def)
	}
}

func TestDefinitionFromOpenAPIWithFS(t *testing.T) {
	const spec = `{
	  "openapi": "3.0.3",
	  "info": {"title": "Feedback", "version": "1.0.0"},
	  "paths": {
	    "/feedback": {
	      "post": {
	        "operationId": "sendFeedback",
	        "requestBody": {
	          "content": {
	            "application/json": {
	              "schema": {
	                "type": "object",
	                "required": ["message"],
	                "properties": {
	                  "message": {"type": "string", "minLength": 1},
	                  "rating": {"type": "integer"}
	                }
	              }
	            }
	          }
	        },
	        "responses": {"202": {"description": "accepted"}}
	      }
	    }
	  }
	}`

	files := fstest.MapFS{
		"spec.json": &fstest.MapFile{Data: []byte(spec)},
	}

	def, err := DefinitionFromOpenAPI(context.Background(),
		pkgopenapi.SourceFromFS("spec.json"), "sendFeedback",
		pkgopenapi.WithFileSystem(files))
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if def.Name != "sendFeedback" || len(def.Fields) != 2 {
		t.Fatalf("definition mismatch: %+v", def)
	}

	message, ok := def.Field("message")
	if !ok || !message.Required {
		t.Fatalf("message spec mismatch: %+v", message)
	}
}

func TestFacadeControllerEndToEnd(t *testing.T) {
	c := New()
	acc := c.Register("email", &Rule{Required: true})
	acc.Set("a@b.com")

	err := c.HandleSubmit(func(_ context.Context, values Values) error {
		if values["email"] != "a@b.com" {
			t.Fatalf("values: %+v", values)
		}
		return nil
	})(context.Background())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !c.State().IsSubmitSuccessful {
		t.Fatalf("state: %+v", c.State())
	}
}
