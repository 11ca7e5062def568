package scaffolding

import (
	"bytes"
	"fmt"
	"text/template"
)

// FileTemplate pairs a project-relative path with its template body. Both
// the path and the body may reference TemplateContext fields.
type FileTemplate struct {
	Path    string
	Content string
}

// TemplateContext holds the values substituted into the templates. The
// validator guarantees both names are safe to splice into paths and
// Python identifiers.
type TemplateContext struct {
	ProjectName string
	PackageName string
}

// RenderedFile is a template with its path and content fully resolved.
type RenderedFile struct {
	Path    string
	Content string
}

// Templates returns the registry of generated files in creation order.
// The order is fixed so output is deterministic run to run.
func Templates() []FileTemplate {
	return []FileTemplate{
		{Path: "README.md", Content: readmeTemplate},
		{Path: "pyproject.toml", Content: pyprojectTemplate},
		{Path: ".gitignore", Content: gitignoreTemplate},
		{Path: "src/{{.PackageName}}/__init__.py", Content: initTemplate},
		{Path: "src/{{.PackageName}}/env.py", Content: envTemplate},
		{Path: "src/{{.PackageName}}/db.py", Content: dbTemplate},
		{Path: "test/sample_test.py", Content: sampleTestTemplate},
		{Path: "src/{{.PackageName}}/main.py", Content: mainTemplate},
		{Path: "config/DEV.yaml", Content: devConfigTemplate},
	}
}

// RenderTemplates resolves every registry entry against spec. It is a pure
// function: no I/O, no clock, byte-identical output for identical specs.
func RenderTemplates(spec ProjectSpec) ([]RenderedFile, error) {
	ctx := TemplateContext{
		ProjectName: spec.ProjectName,
		PackageName: spec.PackageName,
	}

	templates := Templates()
	files := make([]RenderedFile, 0, len(templates))
	for _, ft := range templates {
		path, err := renderString(ft.Path, ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to render path %s: %w", ft.Path, err)
		}
		content, err := renderString(ft.Content, ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", path, err)
		}
		files = append(files, RenderedFile{Path: path, Content: content})
	}
	return files, nil
}

func renderString(text string, ctx TemplateContext) (string, error) {
	tmpl, err := template.New("file").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

const readmeTemplate = `# {{.ProjectName}}

A short tagline or description of what your project does.

## Project Structure
` + "```" + `
{{.ProjectName}}/
|- src/                # Source code
|- test/               # Unit tests
|- pyproject.toml      # Python dependencies and setup
|- README.md           # Project documentation
|- config/             # Configuration of environments
|- notebooks/          # Development notebooks
|- files/              # Data related to the project
` + "```" + `

## Installation
Installation instructions go here.

## Usage
An explanation of how to use the package.

## Running Tests
How to test the project, environments of the package.

## Configuration
How to configure the package.

## Documentation
Where do I find information?

## Contributing
How do we work together?

## Issues
How to report something.

## License
Only if needed.
`

const pyprojectTemplate = `[build-system]
requires = ["setuptools >= 70.0"]
build-backend = "setuptools.build_meta"

[project]
name = "{{.PackageName}}"
version = "0.1.0"
description = "Some description of the project."
readme = "README.md"
requires-python = "==3.14.*"
dependencies = [
    "oracledb",
    "sqlalchemy",
    "numpy",
    "polars",
    "plotly",
    "structlog",
]

# Scripts here
[project.scripts]

# Uv groups dependencies
[dependency-groups]
dev = [
    "jupyterlab>=4.4.0",
    "pytest",
    "ipywidgets",
]

[tool.ruff]
target-version = "py314"

[tool.ruff.lint]
extend-select = ["SIM", "I", "D", "S", "PT"]

[tool.ruff.lint.pydocstyle]
convention = "numpy"

[tool.ruff.lint.per-file-ignores]
"test/*" = ["D", "S"]
`

const gitignoreTemplate = `# Python-generated files
**__pycache__**
*.py[oc]
build/
dist/
wheels/
*.egg-info

# Virtual environments
.venv

# jupyter checkpoints
**ipynb_checkpoints**
`

const initTemplate = `"""Package initiator for {{.PackageName}}.

Loads the environment variables.
"""

from .env import load_env

load_env()
`

const envTemplate = `"""Load environment variables."""

import os
from collections.abc import Iterable
from pathlib import Path
from typing import Optional

import yaml


def find_config_file(
        possible_names: Iterable[str] = (
                "config.yaml",
                "settings.yaml",
                "DEV.yaml")
        ) -> Optional[Path]:
    """Search for a configuration file.

    Starts searching in the current directory, then walks the parents until
    a file with one of the possible names is found.

    Parameters
    ----------
    possible_names: Iterable[str], default = ("config.yaml", "settings.yaml", "DEV.yaml")
        Possible names of the YAML configuration file.

    Returns
    -------
    Optional[Path]
        Path where the file was found.
    """
    cwd = Path.cwd()
    for parent in [cwd, *cwd.parents]:
        for name in possible_names:
            candidate = parent / "config" / name
            if candidate.exists():
                return candidate
    return None


def load_env(path: Optional[str | Path] = None):
    """Load the environment variables from a YAML file.

    Parameters
    ----------
    path: Optional[str | Path]
        Path to the configuration file. If None, automatically search for it.
    """
    if path is None:
        path = find_config_file()
        if path is None:
            raise FileNotFoundError("It was not possible to find a configuration file.")
    else:
        path = Path(path)
    with open(path, "r") as f:
        config = yaml.safe_load(f)

    for mk in config:
        for k in config[mk]:
            os.environ[k] = config[mk][k]
`

const dbTemplate = `"""Database connections.

This module provides functionality to build secure connections to
databases. Currently only Oracle is supported, configured through
environment variables.

Functions
---------
get_engine
    Create the engine for the production database.
"""

import os
import sys

import oracledb
import sqlalchemy

STD_PRD = os.environ["DB_USER"]
STD_PRD_PASS = os.environ["DB_PASSWORD"]
STD_PRD_DSN = f"{os.environ.get('DB_DATABASE')}/{os.environ.get('DB_HOST')}"


def get_engine() -> sqlalchemy.Engine:
    """Create the Oracle connection engine.

    Builds the connection to the Oracle database using oracledb as the
    backend for SQLAlchemy.

    Returns
    -------
    sqlalchemy.Engine
        Connection engine.

    Raises
    ------
    KeyError
        If an environment variable is missing (DB_USER, DB_PASSWORD,
        DB_DATABASE, DB_HOST).
    sqlalchemy.exc.SQLAlchemyError
        Some error from SQLAlchemy while building the engine.

    Notes
    -----
    Registers oracledb in place of the legacy cx_Oracle module to prevent
    compatibility problems with the oracle dialect of SQLAlchemy.
    """
    oracledb.version = "8.3.0"
    sys.modules["cx_Oracle"] = oracledb
    engine = sqlalchemy.create_engine(
        "oracle://:@",
        connect_args={"user": STD_PRD, "password": STD_PRD_PASS, "dsn": STD_PRD_DSN},
    )
    return engine
`

const sampleTestTemplate = `"""Sample tests for {{.PackageName}}."""

import pytest


def test_sample():
    # Test something
    pass
`

const mainTemplate = `"""Example of a main file with logs."""

import polars as pl
import structlog

# This must be called in every file that logs.
logger = structlog.get_logger()

df = pl.DataFrame({"A": [1, 2], "B": [3, 4]})
logger.info("Hello world!", more_than_strings=df)
`

const devConfigTemplate = `# Environment variables are split into categories to make them easier
# to read.
DB:
    DB_USER: "some_user"
    DB_PASSWORD: "some_password"
    DB_HOST: "some_host"
    DB_DATABASE: "some_service"
`
