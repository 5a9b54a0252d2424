package config

// ResolveToken exposes resolveToken for external test packages.
var ResolveToken = resolveToken
