// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "no-recursive" -> FlagNoRecursive).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagAll         = "all"          // Include every project (log)
	FlagBody        = "body"         // Output body without front matter
	FlagDir         = "dir"          // Target is a directory
	FlagHTML        = "html"         // Output rendered HTML
	FlagLocal       = "local"        // Use local scope
	FlagLong        = "long"         // Long format output
	FlagMeta        = "meta"         // Output front-matter metadata only
	FlagNoRecursive = "no-recursive" // Search the directory only
	FlagNumber      = "number"       // Number output lines
	FlagPathsOnly   = "paths-only"   // Output paths only
	FlagRaw         = "raw"          // Raw output without formatting
	FlagShort       = "short"        // Short output (version)

	// String flags

	FlagAddr    = "addr"    // Listen address
	FlagFile    = "file"    // Read content from a local file
	FlagLines   = "lines"   // Line range (e.g., "10:20")
	FlagPath    = "path"    // Directory to search
	FlagPattern = "pattern" // Glob restricting paths
	FlagSince   = "since"   // Look-back window such as 7d (log)

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
