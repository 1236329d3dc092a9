// Package config resolves stylish's runtime configuration.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--format, --wrap, --no-wrap, --terse, --color, --exit-code, --debug)
//  2. Environment variables (STYLISH_FORMAT, STYLISH_WRAP, STYLISH_COLOR,
//     STYLISH_DEBUG, NO_COLOR)
//  3. YAML config file (.stylish.yaml in the working directory or a parent)
//  4. Hardcoded defaults
//
// # Config File
//
//	verbose: true     # print the reason column
//	wrap: 100         # reason width; true means 80, false disables wrapping
//	format: stylish   # stylish, llm or json
//	color: auto       # auto, always or never
//	exit_code: false  # exit 1 when errors are reported
//
// Unknown keys and malformed YAML are errors. Colors themselves live in
// .stylishcolors and are handled by the render package.
package config
