package kcmp

import "reflect"

var intType = reflect.TypeOf(0)

// IsComparator reports whether v is a rich comparator: a compare function
// (see IsCompareFunction) that also exposes a Then method taking one
// argument and a Reversed method taking none.
func IsComparator(v any) bool {
	if !IsCompareFunction(v) {
		return false
	}
	rv := reflect.ValueOf(v)

	then := rv.MethodByName("Then")
	if !then.IsValid() || then.Type().NumIn() != 1 {
		return false
	}
	reversed := rv.MethodByName("Reversed")
	return reversed.IsValid() && reversed.Type().NumIn() == 0
}

// IsCompareFunction reports whether v is a function taking exactly two
// arguments of the same type and returning an int.
// Every rich comparator is also a compare function.
func IsCompareFunction(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() != reflect.Func || t.IsVariadic() {
		return false
	}
	return t.NumIn() == 2 &&
		t.In(0) == t.In(1) &&
		t.NumOut() == 1 &&
		t.Out(0) == intType
}
