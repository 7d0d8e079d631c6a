// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import "github.com/spf13/viper"

// ViperSource adapts a *viper.Viper to the Source interface. Keys use
// viper's own syntax, e.g. "server.port".
type ViperSource struct {
	v *viper.Viper
}

// Viper returns a Source backed by v. A nil v uses the global viper instance.
func Viper(v *viper.Viper) ViperSource {
	if v == nil {
		v = viper.GetViper()
	}
	return ViperSource{v: v}
}

// Lookup implements the Source interface. Keys for which viper.IsSet
// reports false are absent. The zero ViperSource uses the global viper
// instance.
func (src ViperSource) Lookup(key string) Property[any] {
	v := src.v
	if v == nil {
		v = viper.GetViper()
	}
	if !v.IsSet(key) {
		return Empty[any](key)
	}
	return Of(key, v.Get(key))
}
