package scaffold

import "fmt"

// WriteDeployment lays down Docker, nginx, and CI files under dir and
// returns the written paths. Compose services are included only for the
// parts the project actually has.
func WriteDeployment(dir, projectName string, backend, frontend bool) ([]string, error) {
	files := map[string]string{
		"docker-compose.yml":       composeFile(backend, frontend),
		".github/workflows/ci.yml": fmt.Sprintf(ciWorkflow, projectName),
		"README.md":                fmt.Sprintf(readme, projectName),
	}
	if backend {
		files["backend/Dockerfile"] = backendDockerfile
	}
	if frontend {
		files["frontend/Dockerfile"] = frontendDockerfile
		files["frontend/nginx.conf"] = nginxConf
	}
	return writeAll(dir, files)
}

func composeFile(backend, frontend bool) string {
	out := "services:\n"
	if backend {
		out += `  backend:
    build: ./backend
    ports:
      - "5000:5000"
    environment:
      - DATABASE_URL=postgresql://postgres:postgres@db:5432/app
    depends_on:
      - db

  db:
    image: postgres:16-alpine
    environment:
      - POSTGRES_PASSWORD=postgres
      - POSTGRES_DB=app
    volumes:
      - pgdata:/var/lib/postgresql/data

`
	}
	if frontend {
		out += `  frontend:
    build: ./frontend
    ports:
      - "80:80"
`
		if backend {
			out += `    depends_on:
      - backend
`
		}
		out += "\n"
	}
	if backend {
		out += `volumes:
  pgdata:
`
	}
	return out
}

const backendDockerfile = `# Build stage
FROM python:3.11-slim AS builder

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir --user -r requirements.txt

# Runtime stage
FROM python:3.11-slim

WORKDIR /app

COPY --from=builder /root/.local /root/.local
COPY . .

RUN useradd -m appuser && chown -R appuser:appuser /app
USER appuser

ENV PATH=/root/.local/bin:$PATH

EXPOSE 5000

HEALTHCHECK --interval=30s --timeout=3s --start-period=5s --retries=3 \
    CMD python -c "import urllib.request; urllib.request.urlopen('http://localhost:5000/health')" || exit 1

CMD ["gunicorn", "--bind", "0.0.0.0:5000", "--workers", "4", "run:app"]
`

const frontendDockerfile = `# Build stage
FROM node:18-alpine AS builder

WORKDIR /app

COPY package*.json ./
RUN npm ci

COPY . .
RUN npm run build

# Runtime stage
FROM nginx:alpine

COPY --from=builder /app/dist /usr/share/nginx/html
COPY nginx.conf /etc/nginx/conf.d/default.conf

EXPOSE 80

HEALTHCHECK --interval=30s --timeout=3s --start-period=5s --retries=3 \
    CMD wget --no-verbose --tries=1 --spider http://localhost/ || exit 1

CMD ["nginx", "-g", "daemon off;"]
`

const nginxConf = `server {
    listen 80;
    server_name _;

    root /usr/share/nginx/html;
    index index.html;

    location /api/ {
        proxy_pass http://backend:5000/;
        proxy_set_header Host $host;
        proxy_set_header X-Real-IP $remote_addr;
    }

    location / {
        try_files $uri $uri/ /index.html;
    }
}
`

const ciWorkflow = `name: CI

on:
  push:
    branches: [main]
  pull_request:

jobs:
  backend:
    runs-on: ubuntu-latest
    if: ${{ hashFiles('backend/requirements.txt') != '' }}
    defaults:
      run:
        working-directory: backend
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-python@v5
        with:
          python-version: '3.11'
      - run: pip install -r requirements.txt
      - run: pytest

  frontend:
    runs-on: ubuntu-latest
    if: ${{ hashFiles('frontend/package.json') != '' }}
    defaults:
      run:
        working-directory: frontend
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: '18'
      - run: npm ci
      - run: npm run build

# Generated for %s
`

const readme = `# %s

Generated project scaffold.

## Layout

- ` + "`docs/`" + `: deliverables written by each project phase
- ` + "`backend/`" + `: Flask application (if applicable)
- ` + "`frontend/`" + `: React application (if applicable)
- ` + "`docker-compose.yml`" + `: local development stack

## Getting started

1. Read ` + "`docs/07-handoff.md`" + ` for the full handoff guide.
2. Copy ` + "`backend/.env.example`" + ` to ` + "`backend/.env`" + ` and adjust values.
3. Run ` + "`docker compose up --build`" + `.
`
