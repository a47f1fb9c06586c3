package mail

type SlipEmailData struct {
	Name     string
	Month    int
	Year     int
	FileName string
}
