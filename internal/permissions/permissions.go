// Package permissions реализует сопоставление permission строк.
//
// Permission — это dot-segmented scope вида "shop.product.view".
// Wildcard "shop.*" покрывает все permissions с префиксом "shop.",
// универсальный wildcard "*" покрывает всё.
package permissions

import "strings"

// WildcardSuffix — суффикс prefix-wildcard permission
const WildcardSuffix = ".*"

// Universal — permission, покрывающий любой required scope
const Universal = "*"

// Matches проверяет, покрывает ли granted permission required scope.
// Три ветки: универсальный wildcard, точное совпадение, prefix wildcard.
func Matches(granted, required string) bool {
	if granted == Universal {
		return true
	}
	if granted == required {
		return true
	}
	if prefix, ok := strings.CutSuffix(granted, WildcardSuffix); ok {
		return strings.HasPrefix(required, prefix+".")
	}
	return false
}

// HasPermission проверяет, есть ли среди granted permissions хотя бы одна,
// покрывающая required. Пустой список granted всегда запрещает (fail-closed).
func HasPermission(granted []string, required string) bool {
	for _, g := range granted {
		if Matches(g, required) {
			return true
		}
	}
	return false
}

// HasAnyPermission проверяет, покрыт ли хотя бы один из required scopes
func HasAnyPermission(granted []string, required ...string) bool {
	for _, r := range required {
		if HasPermission(granted, r) {
			return true
		}
	}
	return false
}
