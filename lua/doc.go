// Package lua exposes the cstr value type to an embedded gopher-lua
// runtime. The module registers a "cstr" userdata type whose methods mirror
// the Go API, plus the comparison, length, concatenation and tostring
// metamethods, so scripts can treat values like native strings:
//
//	local cstr = require("cstr")
//	local s = cstr.new("hello world")
//	print(s:upper())            -- HELLO WORLD
//	print(s:find("world"))      -- 6
//	local parts = s:split(" ")  -- table of cstr values
//
// Offsets crossing the boundary stay zero-based, matching the Go API
// rather than Lua string convention.
//
// gopher-lua states are not goroutine-safe; callers own the
// synchronization of the LState, as with any other module.
package lua
