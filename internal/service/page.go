package service

// PageResult 分页结果
type PageResult struct {
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int64       `json:"total"`
	Pages    int64       `json:"pages"`
	List     interface{} `json:"list"`
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func newPageResult(page, pageSize int, total int64, list interface{}) *PageResult {
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}
	return &PageResult{Page: page, PageSize: pageSize, Total: total, Pages: pages, List: list}
}
