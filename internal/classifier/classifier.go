// Package classifier 決定查詢是否屬於 BCA 學科範圍。
package classifier

import "strings"

// domainKeywords 為營運方維護的固定關鍵字清單。
// 比對採子字串包含（非斷詞），所以像 "os"、"c" 這類短關鍵字
// 可能在無關單字內誤中；此行為是刻意保留的已知取捨。
var domainKeywords = []string{
	"bca", "computer application",
	"programming", "c", "c++", "java", "python",
	"data structure", "algorithm",
	"dbms", "database", "mysql", "sql",
	"operating system", "os",
	"computer network", "networking",
	"html", "css", "javascript", "php",
	"software engineering",
	"oop", "oops",
	"ai", "artificial intelligence",
	"machine learning",
	"cloud computing",
	"flask", "django",
}

// IsInDomain 回報 query 是否命中任一關鍵字（大小寫不敏感）。
// 純函式：無副作用、不會失敗。
func IsInDomain(query string) bool {
	lowered := strings.ToLower(query)
	for _, keyword := range domainKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Keywords 回傳關鍵字清單的複本（管理介面用）。
func Keywords() []string {
	out := make([]string, len(domainKeywords))
	copy(out, domainKeywords)
	return out
}
