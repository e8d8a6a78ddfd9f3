package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LoginPage renders the standalone login screen. errorMsg, when set, is
// shown above the form.
func LoginPage(errorMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Masuk - NalaBI</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body class="login-body">
<div class="login-card">
<h1 class="login-title">NalaBI</h1>
<p class="login-subtitle">Business Intelligence Nala Aircon</p>
`); err != nil {
			return err
		}

		if errorMsg != "" {
			if _, err := fmt.Fprintf(w, `<div class="alert alert-error">%s</div>
`, esc(errorMsg)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<form method="post" action="/login">
<label for="email">Email</label>
<input type="email" id="email" name="email" required autofocus>
<label for="password">Password</label>
<input type="password" id="password" name="password" required>
<button type="submit" class="btn btn-primary btn-block">Masuk</button>
</form>
</div>
</body>
</html>
`)
		return err
	})
}
