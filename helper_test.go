package supportbank

// mustDate is a test helper building a Date from ISO text.
func mustDate(s string) Date {
	d, err := ParseDate(s, LayoutISO)
	if err != nil {
		panic(err)
	}
	return d
}

// mustMoney is a test helper building a Money from decimal text.
func mustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}
