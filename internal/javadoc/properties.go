package javadoc

import (
	"os"
	"strings"
)

// JSONDirProperty names the process-wide setting that points at the
// directory containing the documentation files.
const JSONDirProperty = "docjson.dir"

// PropertySource supplies process-wide string settings.
type PropertySource interface {
	Property(key string) (string, bool)
}

// Properties is a fixed set of settings, mostly useful in tests and when the
// caller already loaded its configuration.
type Properties map[string]string

// Property implements PropertySource.
func (p Properties) Property(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

type envProperties struct{}

// SystemProperties returns a PropertySource backed by the process
// environment. A key such as "docjson.dir" is looked up as DOCJSON_DIR.
func SystemProperties() PropertySource {
	return envProperties{}
}

func (envProperties) Property(key string) (string, bool) {
	return os.LookupEnv(EnvName(key))
}

// EnvName maps a property key to its environment variable name.
func EnvName(key string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}
