package templates

import "github.com/ragforge/flowgraph/model"

// Builtin returns the built-in pipeline templates.
func Builtin() []Template {
	return []Template{
		kbLocalFolder(),
		kbWebsite(),
	}
}

// Find returns the builtin template with the given id, or nil.
func Find(id string) *Template {
	for _, t := range Builtin() {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

func kbParameters() map[string]model.Parameter {
	return map[string]model.Parameter{
		"sourceUrl": {
			Name:        "sourceUrl",
			Type:        "string",
			Description: "Location of the source documents",
			Required:    true,
		},
		"embeddingModel": {
			Name:        "embeddingModel",
			Type:        "string",
			Description: "Embedding model identifier",
			Required:    true,
		},
		"name": {
			Name:        "name",
			Type:        "string",
			Description: "Knowledge base name",
			Required:    true,
		},
		"product": {
			Name:        "product",
			Type:        "string",
			Description: "Product the knowledge base belongs to",
			Required:    true,
		},
		"version": {
			Name:        "version",
			Type:        "string",
			Description: "Product version",
			Required:    false,
			Default:     "latest",
		},
	}
}

// kbLocalFolder chains the full catalog from a local directory to a packed
// knowledge base.
func kbLocalFolder() Template {
	return Template{
		ID:          "kb-local-folder",
		Name:        "KB Creation - Local Folder",
		Description: "Build a knowledge base from documents in a local folder",
		Category:    "kb-creation",
		Tags:        []string{"kb", "local"},
		Parameters:  kbParameters(),
		Steps: []TemplateStep{
			{ID: "fetch", Type: "fetch", Config: map[string]any{"source": "local-folder", "path": "{{sourceUrl}}"}},
			{ID: "parse", Type: "parse"},
			{ID: "normalize", Type: "normalize"},
			{ID: "chunk", Type: "chunk"},
			{ID: "embed", Type: "embed", Config: map[string]any{"model": "{{embeddingModel}}"}},
			{ID: "index", Type: "index"},
			{ID: "eval", Type: "eval"},
			{ID: "pack", Type: "pack", Config: map[string]any{"name": "{{name}}", "product": "{{product}}", "version": "{{version}}"}},
		},
	}
}

// kbWebsite is the same chain fetching from a crawled website.
func kbWebsite() Template {
	return Template{
		ID:          "kb-website",
		Name:        "KB Creation - Website",
		Description: "Build a knowledge base from a crawled website",
		Category:    "kb-creation",
		Tags:        []string{"kb", "web"},
		Parameters:  kbParameters(),
		Steps: []TemplateStep{
			{ID: "fetch", Type: "fetch", Config: map[string]any{"source": "website", "url": "{{sourceUrl}}", "maxDepth": 3}},
			{ID: "parse", Type: "parse", Config: map[string]any{"formats": []any{"html", "md"}}},
			{ID: "normalize", Type: "normalize"},
			{ID: "chunk", Type: "chunk"},
			{ID: "embed", Type: "embed", Config: map[string]any{"model": "{{embeddingModel}}"}},
			{ID: "index", Type: "index"},
			{ID: "eval", Type: "eval"},
			{ID: "pack", Type: "pack", Config: map[string]any{"name": "{{name}}", "product": "{{product}}", "version": "{{version}}"}},
		},
	}
}
