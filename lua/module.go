package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/cstr"
)

// TypeName is the registered userdata type and module name.
const TypeName = "cstr"

// Preload registers the cstr module so scripts can require("cstr").
func Preload(L *lua.LState) {
	L.PreloadModule(TypeName, Loader)
}

// Loader builds the module table and userdata metatable. Suitable for
// direct use with PreloadModule.
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":   newValue,
		"empty": emptyValue,
	})

	mt := L.NewTypeMetatable(TypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__tostring", L.NewFunction(metaToString))
	L.SetField(mt, "__len", L.NewFunction(metaLen))
	L.SetField(mt, "__eq", L.NewFunction(metaEq))
	L.SetField(mt, "__lt", L.NewFunction(metaLt))
	L.SetField(mt, "__le", L.NewFunction(metaLe))
	L.SetField(mt, "__concat", L.NewFunction(metaConcat))

	L.Push(mod)
	return 1
}

var methods = map[string]lua.LGFunction{
	"len":         strLen,
	"find":        strFind,
	"index":       strIndex,
	"rfind":       strRFind,
	"rindex":      strRIndex,
	"count":       strCount,
	"contains":    strContains,
	"startswith":  strStartsWith,
	"endswith":    strEndsWith,
	"split":       strSplit,
	"partition":   strPartition,
	"rpartition":  strRPartition,
	"strip":       strStrip,
	"lstrip":      strLStrip,
	"rstrip":      strRStrip,
	"lower":       strLower,
	"upper":       strUpper,
	"swapcase":    strSwapCase,
	"isalnum":     strIsAlnum,
	"isalpha":     strIsAlpha,
	"isdigit":     strIsDigit,
	"islower":     strIsLower,
	"isupper":     strIsUpper,
	"isspace":     strIsSpace,
	"isprintable": strIsPrintable,
	"at":          strAt,
	"sub":         strSub,
	"rep":         strRep,
	"join":        strJoin,
	"hash":        strHash,
}

// push wraps v as a cstr userdata and pushes it.
func push(L *lua.LState, v *cstr.Value) int {
	ud := L.NewUserData()
	ud.Value = v
	L.SetMetatable(ud, L.GetTypeMetatable(TypeName))
	L.Push(ud)
	return 1
}

// check extracts the cstr value at idx or raises an argument error.
func check(L *lua.LState, idx int) *cstr.Value {
	ud := L.CheckUserData(idx)
	if v, ok := ud.Value.(*cstr.Value); ok {
		return v
	}
	L.ArgError(idx, "cstr expected")
	return nil
}

// checkText accepts either a Lua string or a cstr userdata, yielding an
// argument for the Go API's string-like parameters.
func checkText(L *lua.LState, idx int) any {
	switch a := L.Get(idx).(type) {
	case lua.LString:
		return string(a)
	case *lua.LUserData:
		if v, ok := a.Value.(*cstr.Value); ok {
			return v
		}
	}
	L.ArgError(idx, "string or cstr expected")
	return nil
}

// optBounds reads optional zero-based start/end window bounds at idx and
// idx+1.
func optBounds(L *lua.LState, idx int) (int, int) {
	return L.OptInt(idx, 0), L.OptInt(idx+1, cstr.End)
}

func newValue(L *lua.LState) int {
	v, err := cstr.New(checkText(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return push(L, v)
}

func emptyValue(L *lua.LState) int {
	return push(L, cstr.Empty())
}

func strLen(L *lua.LState) int {
	L.Push(lua.LNumber(check(L, 1).Len()))
	return 1
}

func strHash(L *lua.LState) int {
	L.Push(lua.LNumber(check(L, 1).Hash()))
	return 1
}

func findWith(L *lua.LState, search func(*cstr.Value, any, int, int) (int, error)) int {
	v := check(L, 1)
	sub := checkText(L, 2)
	start, end := optBounds(L, 3)
	p, err := search(v, sub, start, end)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(p))
	return 1
}

func strFind(L *lua.LState) int   { return findWith(L, (*cstr.Value).Find) }
func strIndex(L *lua.LState) int  { return findWith(L, (*cstr.Value).Index) }
func strRFind(L *lua.LState) int  { return findWith(L, (*cstr.Value).RFind) }
func strRIndex(L *lua.LState) int { return findWith(L, (*cstr.Value).RIndex) }

func strCount(L *lua.LState) int {
	v := check(L, 1)
	sub := checkText(L, 2)
	start, end := optBounds(L, 3)
	n, err := v.Count(sub, start, end)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

func strContains(L *lua.LState) int {
	ok, err := check(L, 1).Contains(checkText(L, 2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LBool(ok))
	return 1
}

func edgeWith(L *lua.LState, edge func(*cstr.Value, any, int, int) (bool, error)) int {
	v := check(L, 1)
	sub := checkText(L, 2)
	start, end := optBounds(L, 3)
	ok, err := edge(v, sub, start, end)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LBool(ok))
	return 1
}

func strStartsWith(L *lua.LState) int { return edgeWith(L, (*cstr.Value).StartsWith) }
func strEndsWith(L *lua.LState) int   { return edgeWith(L, (*cstr.Value).EndsWith) }

func strSplit(L *lua.LState) int {
	v := check(L, 1)
	var sep any
	if L.Get(2) != lua.LNil {
		sep = checkText(L, 2)
	}
	max := L.OptInt(3, -1)

	fields, err := v.Split(sep, max)
	if err != nil {
		L.RaiseError("%v", err)
	}
	tbl := L.NewTable()
	for _, f := range fields {
		ud := L.NewUserData()
		ud.Value = f
		L.SetMetatable(ud, L.GetTypeMetatable(TypeName))
		tbl.Append(ud)
	}
	L.Push(tbl)
	return 1
}

func partitionWith(L *lua.LState, part func(*cstr.Value, any) (*cstr.Value, *cstr.Value, *cstr.Value, error)) int {
	v := check(L, 1)
	before, match, after, err := part(v, checkText(L, 2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	push(L, before)
	push(L, match)
	push(L, after)
	return 3
}

func strPartition(L *lua.LState) int  { return partitionWith(L, (*cstr.Value).Partition) }
func strRPartition(L *lua.LState) int { return partitionWith(L, (*cstr.Value).RPartition) }

func stripWith(L *lua.LState, all func(*cstr.Value) *cstr.Value, set func(*cstr.Value, string) *cstr.Value) int {
	v := check(L, 1)
	if L.Get(2) == lua.LNil {
		return push(L, all(v))
	}
	return push(L, set(v, L.CheckString(2)))
}

func strStrip(L *lua.LState) int {
	return stripWith(L, (*cstr.Value).Strip, (*cstr.Value).StripChars)
}

func strLStrip(L *lua.LState) int {
	return stripWith(L, (*cstr.Value).LStrip, (*cstr.Value).LStripChars)
}

func strRStrip(L *lua.LState) int {
	return stripWith(L, (*cstr.Value).RStrip, (*cstr.Value).RStripChars)
}

func strLower(L *lua.LState) int    { return push(L, check(L, 1).Lower()) }
func strUpper(L *lua.LState) int    { return push(L, check(L, 1).Upper()) }
func strSwapCase(L *lua.LState) int { return push(L, check(L, 1).SwapCase()) }

func predicateWith(L *lua.LState, pred func(*cstr.Value) bool) int {
	L.Push(lua.LBool(pred(check(L, 1))))
	return 1
}

func strIsAlnum(L *lua.LState) int     { return predicateWith(L, (*cstr.Value).IsAlnum) }
func strIsAlpha(L *lua.LState) int     { return predicateWith(L, (*cstr.Value).IsAlpha) }
func strIsDigit(L *lua.LState) int     { return predicateWith(L, (*cstr.Value).IsDigit) }
func strIsLower(L *lua.LState) int     { return predicateWith(L, (*cstr.Value).IsLower) }
func strIsUpper(L *lua.LState) int     { return predicateWith(L, (*cstr.Value).IsUpper) }
func strIsSpace(L *lua.LState) int     { return predicateWith(L, (*cstr.Value).IsSpace) }
func strIsPrintable(L *lua.LState) int { return predicateWith(L, (*cstr.Value).IsPrintable) }

func strAt(L *lua.LState) int {
	v, err := check(L, 1).At(L.CheckInt(2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return push(L, v)
}

func strSub(L *lua.LState) int {
	v := check(L, 1)
	start := L.OptInt(2, cstr.Open)
	stop := L.OptInt(3, cstr.Open)
	step := L.OptInt(4, 1)
	out, err := v.SliceStep(start, stop, step)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return push(L, out)
}

func strRep(L *lua.LState) int {
	return push(L, check(L, 1).Repeat(L.CheckInt(2)))
}

func strJoin(L *lua.LState) int {
	sep := check(L, 1)
	tbl := L.CheckTable(2)

	elems := make([]*cstr.Value, 0, tbl.Len())
	var badIdx int
	tbl.ForEach(func(k, item lua.LValue) {
		if badIdx != 0 {
			return
		}
		ud, ok := item.(*lua.LUserData)
		if !ok {
			badIdx = int(lua.LVAsNumber(k))
			return
		}
		v, ok := ud.Value.(*cstr.Value)
		if !ok {
			badIdx = int(lua.LVAsNumber(k))
			return
		}
		elems = append(elems, v)
	})
	if badIdx != 0 {
		L.RaiseError("join: element %d is not a cstr value", badIdx)
	}
	return push(L, sep.JoinValues(elems...))
}

func metaToString(L *lua.LState) int {
	L.Push(lua.LString(check(L, 1).String()))
	return 1
}

func metaLen(L *lua.LState) int {
	L.Push(lua.LNumber(check(L, 1).Len()))
	return 1
}

func metaEq(L *lua.LState) int {
	L.Push(lua.LBool(check(L, 1).Equal(check(L, 2))))
	return 1
}

func metaLt(L *lua.LState) int {
	L.Push(lua.LBool(check(L, 1).Less(check(L, 2))))
	return 1
}

func metaLe(L *lua.LState) int {
	L.Push(lua.LBool(check(L, 1).Compare(check(L, 2)) <= 0))
	return 1
}

func metaConcat(L *lua.LState) int {
	return push(L, check(L, 1).Concat(check(L, 2)))
}
