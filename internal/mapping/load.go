package mapping

import (
	"fmt"

	"github.com/spf13/viper"
)

// mappingsFile is the on-disk layout of a mappings file. Lists are used rather
// than maps because viper lower-cases map keys.
type mappingsFile struct {
	ReplaceDefaults bool    `mapstructure:"replace_defaults"`
	Headers         []Entry `mapstructure:"headers"`
	Values          []Entry `mapstructure:"values"`
}

// LoadFile reads a YAML (or any viper supported format) mappings file.
// Unless the file sets replace_defaults, its entries are appended after the
// built-in ones, so for headers they take part in the same ordered scan and
// for values they override built-in tokens.
//
//	replace_defaults: false
//	headers:
//	  - key: "जन्म तारीख"
//	    value: date_of_birth
//	values:
//	  - key: "आहे"
//	    value: "Yes"
func LoadFile(path string) (*Set, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read mappings file: %w", err)
	}

	var file mappingsFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse mappings file: %w", err)
	}

	headers := file.Headers
	values := file.Values
	if !file.ReplaceDefaults {
		headers = append(DefaultHeaderEntries(), file.Headers...)
		values = append(DefaultValueEntries(), file.Values...)
	}

	set := &Set{
		Headers: NewHeaderMapping(headers),
		Values:  NewValueMapping(values),
	}
	if set.Headers.Len() == 0 {
		return nil, fmt.Errorf("mappings file %s defines no header entries", path)
	}
	return set, nil
}
