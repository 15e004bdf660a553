package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Catalog holds the flattened messages of one language, keyed by dotted path.
type Catalog map[string]string

var (
	catalogsMu sync.Mutex
	catalogs   = map[string]Catalog{}
)

// LoadCatalog returns the embedded catalog for a supported language code.
// Catalogs are parsed once and cached.
func LoadCatalog(code string) (Catalog, error) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()

	if catalog, ok := catalogs[code]; ok {
		return catalog, nil
	}

	data, err := localesFS.ReadFile(path.Join("locales", code+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no catalog for language %q: %w", code, err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", code, err)
	}

	catalogs[code] = catalog
	return catalog, nil
}

// ParseCatalog decodes a nested YAML document into a flat Catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	catalog := Catalog{}
	flatten("", raw, catalog)
	return catalog, nil
}

func flatten(prefix string, node map[string]interface{}, out Catalog) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = strings.TrimSpace(fmt.Sprint(v))
		}
	}
}
