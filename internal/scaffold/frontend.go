package scaffold

import "fmt"

// WriteFrontend lays down a React (Vite) skeleton under dir/frontend and
// returns the written paths.
func WriteFrontend(dir, projectName string) ([]string, error) {
	slugged := Slugify(projectName)
	files := map[string]string{
		"frontend/package.json":  fmt.Sprintf(frontendPackageJSON, slugged),
		"frontend/index.html":    fmt.Sprintf(frontendIndexHTML, projectName),
		"frontend/vite.config.js": frontendViteConfig,
		"frontend/src/main.jsx":  frontendMainJSX,
		"frontend/src/App.jsx":   fmt.Sprintf(frontendAppJSX, projectName),
		"frontend/src/index.css": frontendIndexCSS,
	}
	return writeAll(dir, files)
}

const frontendPackageJSON = `{
  "name": "%s",
  "private": true,
  "version": "0.1.0",
  "type": "module",
  "scripts": {
    "dev": "vite",
    "build": "vite build",
    "preview": "vite preview"
  },
  "dependencies": {
    "react": "^18.3.0",
    "react-dom": "^18.3.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.0",
    "vite": "^5.4.0"
  }
}
`

const frontendIndexHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`

const frontendViteConfig = `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
  server: {
    proxy: {
      '/api': 'http://localhost:5000',
    },
  },
})
`

const frontendMainJSX = `import React from 'react'
import ReactDOM from 'react-dom/client'
import App from './App.jsx'
import './index.css'

ReactDOM.createRoot(document.getElementById('root')).render(
  <React.StrictMode>
    <App />
  </React.StrictMode>,
)
`

const frontendAppJSX = `export default function App() {
  return (
    <main className="container">
      <h1>%s</h1>
      <p>Generated scaffold. Replace this with your application.</p>
    </main>
  )
}
`

const frontendIndexCSS = `:root {
  font-family: system-ui, sans-serif;
  line-height: 1.5;
}

body {
  margin: 0;
}

.container {
  max-width: 960px;
  margin: 0 auto;
  padding: 2rem 1rem;
}
`
