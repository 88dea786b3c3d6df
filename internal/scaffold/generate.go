package scaffold

// Generate writes the full boilerplate set for a project into dir and
// returns the written paths.
func Generate(dir, projectName string, backend, frontend bool) ([]string, error) {
	var paths []string

	if backend {
		p, err := WriteBackend(dir, projectName)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p...)
	}
	if frontend {
		p, err := WriteFrontend(dir, projectName)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p...)
	}

	p, err := WriteDeployment(dir, projectName, backend, frontend)
	if err != nil {
		return nil, err
	}
	paths = append(paths, p...)

	return paths, nil
}
