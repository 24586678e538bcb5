package email

// SendPersonRegisteredEmail welcomes a newly registered person.
func (c *Client) SendPersonRegisteredEmail(to, fullName, nationalID string) error {
	// Keys must match templates/person_registered.html.
	data := map[string]string{
		"FullName":   fullName,
		"NationalID": nationalID,
	}

	return c.SendEmail(
		to,
		"Your registration is complete",
		TemplatePersonRegistered,
		data,
	)
}
