package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag lets a flag override key only when it was set on the command
// line; otherwise environment and defaults apply.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		panic("cmd: binding unknown flag for " + key)
	}
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
