package config

// ClassListCacheKey holds the cached distinct class-label list.
// Bump the suffix when the cached shape changes.
const ClassListCacheKey = "classtrack:classes:v1"
