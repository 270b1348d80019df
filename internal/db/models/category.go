package models

type Category string

const (
	CategoryGlobal Category = "global"
	CategoryDev    Category = "dev"
	CategoryDark   Category = "dark"
	CategoryLimit  Category = "limit"
	CategoryBeauf  Category = "beauf"
	CategoryBlonde Category = "blondes"
)

var Categories = []Category{
	CategoryGlobal,
	CategoryDev,
	CategoryDark,
	CategoryLimit,
	CategoryBeauf,
	CategoryBlonde,
}

var CategoryNames = map[Category]string{
	CategoryGlobal: "Général",
	CategoryDev:    "Développeur",
	CategoryDark:   "Humour Noir",
	CategoryLimit:  "+18",
	CategoryBeauf:  "Beauf",
	CategoryBlonde: "Blondes",
}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := CategoryNames[c]
	return ok
}
