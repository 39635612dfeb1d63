// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import "fmt"

const confirmationSubject = "Confirmation code"

// Message is one outgoing email. An empty From is filled by the mailer.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// ConfirmationMessage builds the signup email carrying code.
func ConfirmationMessage(to, username, code string) Message {
	return Message{
		To:      to,
		Subject: confirmationSubject,
		Text:    fmt.Sprintf("Username - %s\nConfirmation code - %s", username, code),
	}
}
