// Package scaffold verifies that the AI-First SDLC framework scaffold is
// installed in a project.
//
// A Check names a set of Requirements (paths relative to the project root)
// and an optional content Inspect. Checks are grouped into a Suite per
// profile and executed by a Verifier, which only reads the filesystem and
// never lets one check influence another. The minimal profile holds the
// three presence checks every framework installation ships with:
//
//	framework-setup    always passes
//	project-structure  docs, retrospectives and CLAUDE.md exist
//	version-file       VERSION exists
package scaffold
