package main

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/cornershape/internal/domain/config"
	"github.com/felixgeelhaar/cornershape/internal/domain/cornershape"
	"github.com/felixgeelhaar/cornershape/internal/domain/preset"
	"github.com/spf13/cobra"
)

// shapeFlags holds the plugin option flags shared by init and css.
type shapeFlags struct {
	def       string
	variants  []string
	exclude   []string
	important bool
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.def, "default", "", "default corner-shape, e.g. squircle or superellipse(1.5)")
	cmd.Flags().StringArrayVar(&f.variants, "variant", nil, "per-size corner-shape as key=shape (repeatable)")
	cmd.Flags().StringArrayVar(&f.exclude, "exclude", nil, "class to leave untouched, e.g. rounded-none (repeatable)")
	cmd.Flags().BoolVar(&f.important, "important", false, "mark corner-shape declarations !important")

	_ = cmd.RegisterFlagCompletionFunc("default", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return cornershape.Keywords, cobra.ShellCompDirectiveNoFileComp
	})
}

// options returns the options set on the command line. Unset flags stay
// unset so settings can fill them.
func (f *shapeFlags) options(cmd *cobra.Command) (cornershape.Options, error) {
	var opts cornershape.Options
	flags := cmd.Flags()

	if flags.Changed("default") {
		opts.Default = strings.TrimSpace(f.def)
	}
	if flags.Changed("variant") {
		opts.Variants = make(map[string]string, len(f.variants))
		for _, v := range f.variants {
			key, shape, ok := strings.Cut(v, "=")
			if !ok {
				return cornershape.Options{}, config.NewUserError(config.ErrCodeValidationFailed,
					fmt.Sprintf("variant %q is not key=shape", v)).
					WithContext("--variant").
					WithSuggestion("Write variants like --variant lg=bevel.")
			}
			opts.Variants[strings.TrimSpace(key)] = strings.TrimSpace(shape)
		}
	}
	if flags.Changed("exclude") {
		opts.Exclude = append([]string(nil), f.exclude...)
	}
	if flags.Changed("important") {
		opts.Important = cornershape.Bool(f.important)
	}
	return opts, nil
}

// presetOptions returns the options a menu preset stands for.
func presetOptions(p preset.Preset) cornershape.Options {
	return cornershape.Options{Default: p.Shape}
}

// resolvePreset applies flags over settings. It reports false when
// neither names a preset or options, leaving the choice to the user.
func resolvePreset(presetFlag string, presetChanged bool, flagOpts cornershape.Options, settings config.Settings) (preset.Preset, bool, error) {
	var (
		base    preset.Preset
		hasBase bool
	)
	switch {
	case presetChanged:
		p, err := preset.Find(presetFlag)
		if err != nil {
			return preset.Preset{}, false, err
		}
		base, hasBase = p, true
	case settings.Preset != "":
		p, err := preset.Find(settings.Preset)
		if err != nil {
			return preset.Preset{}, false, config.GetUserError(err).WithContext(settings.Source)
		}
		base, hasBase = p, true
	}

	opts := cornershape.FromSettings(settings.Options).Merge(flagOpts)
	if opts.IsZero() {
		return base, hasBase, nil
	}
	if hasBase {
		opts = presetOptions(base).Merge(opts)
	}
	if err := opts.Validate(); err != nil {
		return preset.Preset{}, false, err
	}
	return preset.Custom(opts.Expression(), opts.Default), true, nil
}
