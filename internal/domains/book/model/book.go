package model

// Book is a bibliographic record keyed by ISBN.
// The ISBN is the primary key and never changes after creation.
type Book struct {
	ISBN      string `json:"isbn" db:"isbn"`
	AmazonURL string `json:"amazon_url" db:"amazon_url"`
	Author    string `json:"author" db:"author"`
	Language  string `json:"language" db:"language"`
	Pages     int    `json:"pages" db:"pages"`
	Publisher string `json:"publisher" db:"publisher"`
	Title     string `json:"title" db:"title"`
	Year      int    `json:"year" db:"year"`
}

// Columns is the select list matching the field order scanned by repositories.
const Columns = "isbn, amazon_url, author, language, pages, publisher, title, year"

// ScanTargets returns pointers to the fields in Columns order.
func (b *Book) ScanTargets() []interface{} {
	return []interface{}{
		&b.ISBN,
		&b.AmazonURL,
		&b.Author,
		&b.Language,
		&b.Pages,
		&b.Publisher,
		&b.Title,
		&b.Year,
	}
}
