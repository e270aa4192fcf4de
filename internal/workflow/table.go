// table.go defines the command table: one Spec per workflow action.
//
// Each renderer turns resolved values into a shell command sequence.
// Renderers that rewrite the manifest (create-release, finish-release,
// finish-hotfix) first check out the target branch through the executor,
// so the manifest write lands on the branch the subsequent commit runs
// on. The checkout, the manifest write, and the final sequence are the
// three suspension points of one action.
//
// Canonical merge semantics: finish-release merges the release branch
// into the base branch only, and finish-hotfix merges into its release
// branch and always deletes the finished hotfix branch.
package workflow

import (
	"context"
	"fmt"

	"github.com/2lazy2debug/gitf/internal/manifest"
	"github.com/2lazy2debug/gitf/internal/model"
	"github.com/2lazy2debug/gitf/internal/version"
	"mvdan.cc/sh/v3/syntax"
)

// writeVersion performs the manifest rewrite. A package variable so
// tests can intercept writes without touching the filesystem.
var writeVersion = manifest.WriteVersion

// buildTable constructs the closed action table. Called once from
// NewEngine; the result is never mutated.
func buildTable() map[model.Action]Spec {
	return map[model.Action]Spec{
		model.ActionCreateFeature: {
			Arity:    1,
			Validate: validateCreateFeature,
			Render:   renderCreateFeature,
		},
		model.ActionIncorporateFeature: {
			Arity:    1,
			Validate: validateIncorporateFeature,
			Render:   renderIncorporateFeature,
		},
		model.ActionCreateRelease: {
			Arity:    1,
			Validate: validateCreateRelease,
			Render:   renderCreateRelease,
		},
		model.ActionFinishRelease: {
			Arity:    1,
			Validate: validateFinishRelease,
			Render:   renderFinishRelease,
		},
		model.ActionCreateHotfix: {
			Arity:    1,
			Validate: validateCreateHotfix,
			Render:   renderCreateHotfix,
		},
		model.ActionFinishHotfix: {
			Arity:    1,
			Validate: validateFinishHotfix,
			Render:   renderFinishHotfix,
		},
		model.ActionRemovePath: {
			Arity:    2,
			Validate: validateRemovePath,
			Render:   renderRemovePath,
		},
	}
}

// --- create-feature -------------------------------------------------

func validateCreateFeature(_ context.Context, _ *Env, args []string) error {
	return model.ValidateFeatureName(args[0])
}

func renderCreateFeature(_ context.Context, env *Env, args []string) (string, error) {
	branch := model.BranchName(model.KindFeature, args[0])
	return fmt.Sprintf("git checkout -b %s %s", branch, env.Cfg.BaseBranch), nil
}

// --- incorporate-feature --------------------------------------------

func validateIncorporateFeature(ctx context.Context, env *Env, args []string) error {
	if err := model.ValidateFeatureName(args[0]); err != nil {
		return err
	}
	branch := model.BranchName(model.KindFeature, args[0])
	if !env.Git.BranchExists(ctx, branch) {
		return fmt.Errorf("branch %q does not exist", branch)
	}
	return nil
}

func renderIncorporateFeature(_ context.Context, env *Env, args []string) (string, error) {
	branch := model.BranchName(model.KindFeature, args[0])
	return fmt.Sprintf("git checkout %s && git merge %s && git branch -D %s",
		env.Cfg.BaseBranch, branch, branch), nil
}

// --- create-release -------------------------------------------------

func validateCreateRelease(_ context.Context, _ *Env, args []string) error {
	level, err := version.ParseLevel(args[0])
	if err != nil {
		return err
	}
	// A release never bumps only the patch component; that is what
	// hotfixes are for.
	if level == version.LevelPatch {
		return fmt.Errorf("create-release level must be minor or major, got %q", level)
	}
	return nil
}

func renderCreateRelease(ctx context.Context, env *Env, args []string) (string, error) {
	level, err := version.ParseLevel(args[0])
	if err != nil {
		return "", err
	}

	// Move to the base branch first: the commit below must land there,
	// and the manifest fallback must read the base branch's file.
	if _, err := env.Exec.Execute(ctx, "git checkout "+env.Cfg.BaseBranch); err != nil {
		return "", err
	}

	current, err := env.Resolver.Resolve(ctx, "")
	if err != nil {
		return "", err
	}
	next, err := version.Increment(current, level)
	if err != nil {
		return "", err
	}
	line, err := version.ReleaseLine(next)
	if err != nil {
		return "", err
	}

	rc := next + "-rc.1"
	if err := writeManifestVersion(env, rc); err != nil {
		return "", err
	}

	releaseBranch := model.BranchName(model.KindRelease, line)
	return fmt.Sprintf("git commit -am 'release %s' && git tag %s && git checkout -b %s %s",
		rc, rc, releaseBranch, env.Cfg.BaseBranch), nil
}

// --- finish-release -------------------------------------------------

func validateFinishRelease(ctx context.Context, env *Env, args []string) error {
	if err := model.ValidateReleaseLine(args[0]); err != nil {
		return err
	}
	branch := model.BranchName(model.KindRelease, args[0])
	if !env.Git.BranchExists(ctx, branch) {
		return fmt.Errorf("branch %q does not exist", branch)
	}
	return nil
}

func renderFinishRelease(ctx context.Context, env *Env, args []string) (string, error) {
	line := args[0]
	releaseBranch := model.BranchName(model.KindRelease, line)

	if _, err := env.Exec.Execute(ctx, "git checkout "+releaseBranch); err != nil {
		return "", err
	}

	current, err := env.Resolver.Resolve(ctx, line)
	if err != nil {
		return "", err
	}
	next, err := version.Increment(current, version.LevelPatch)
	if err != nil {
		return "", err
	}

	if err := writeManifestVersion(env, next); err != nil {
		return "", err
	}

	return fmt.Sprintf("git commit -am 'release %s' && git tag %s && git checkout %s && git merge %s",
		next, next, env.Cfg.BaseBranch, releaseBranch), nil
}

// --- create-hotfix --------------------------------------------------

func validateCreateHotfix(ctx context.Context, env *Env, args []string) error {
	if err := model.ValidateReleaseLine(args[0]); err != nil {
		return err
	}
	branch := model.BranchName(model.KindRelease, args[0])
	if !env.Git.BranchExists(ctx, branch) {
		return fmt.Errorf("branch %q does not exist", branch)
	}
	return nil
}

func renderCreateHotfix(ctx context.Context, env *Env, args []string) (string, error) {
	line := args[0]
	current, err := env.Resolver.Resolve(ctx, line)
	if err != nil {
		return "", err
	}
	next, err := version.Increment(current, version.LevelPatch)
	if err != nil {
		return "", err
	}

	hotfixBranch := model.BranchName(model.KindHotfix, next)
	releaseBranch := model.BranchName(model.KindRelease, line)
	return fmt.Sprintf("git checkout -b %s %s", hotfixBranch, releaseBranch), nil
}

// --- finish-hotfix --------------------------------------------------

func validateFinishHotfix(ctx context.Context, env *Env, args []string) error {
	if err := model.ValidateVersionTriple(args[0]); err != nil {
		return err
	}
	branch := model.BranchName(model.KindHotfix, args[0])
	if !env.Git.BranchExists(ctx, branch) {
		return fmt.Errorf("branch %q does not exist", branch)
	}
	return nil
}

func renderFinishHotfix(ctx context.Context, env *Env, args []string) (string, error) {
	v := args[0]
	hotfixBranch := model.BranchName(model.KindHotfix, v)

	if _, err := env.Exec.Execute(ctx, "git checkout "+hotfixBranch); err != nil {
		return "", err
	}

	if err := writeManifestVersion(env, v); err != nil {
		return "", err
	}

	line, err := version.ReleaseLine(v)
	if err != nil {
		return "", err
	}
	releaseBranch := model.BranchName(model.KindRelease, line)

	return fmt.Sprintf("git commit -am 'hotfix %s' && git tag %s && git checkout %s && git merge %s && git branch -D %s",
		v, v, releaseBranch, hotfixBranch, hotfixBranch), nil
}

// --- remove-path ----------------------------------------------------

// validateRemovePath checks argument shape only. Unlike the branch
// actions, the branch argument is NOT checked for existence: an unknown
// branch surfaces as an execution error from the checkout step, not a
// validation error.
func validateRemovePath(_ context.Context, _ *Env, args []string) error {
	if args[0] == "" {
		return fmt.Errorf("path must not be empty")
	}
	if args[1] == "" {
		return fmt.Errorf("branch must not be empty")
	}
	return nil
}

func renderRemovePath(_ context.Context, _ *Env, args []string) (string, error) {
	// Both values end up inside a shell command string, the path even
	// nested inside the index-filter script, so each level is quoted
	// for the shell that will parse it.
	path, err := syntax.Quote(args[0], syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("path is not shell-quotable: %w", err)
	}
	branch, err := syntax.Quote(args[1], syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("branch is not shell-quotable: %w", err)
	}
	filter, err := syntax.Quote("git rm -r --cached --ignore-unmatch "+path, syntax.LangBash)
	if err != nil {
		return "", fmt.Errorf("path is not shell-quotable: %w", err)
	}
	return fmt.Sprintf("git checkout %s && "+
		"git filter-branch --force --index-filter %s --prune-empty --tag-name-filter cat -- --all && "+
		"git for-each-ref --format='%%(refname)' refs/original/ | xargs -n 1 git update-ref -d && "+
		"git reflog expire --expire=now --all && "+
		"git gc --prune=now --aggressive",
		branch, filter), nil
}

// writeManifestVersion rewrites the manifest's version field in place.
// Declared as a seam on Env-adjacent state so tests can observe that a
// failed validation never reaches it.
func writeManifestVersion(env *Env, v string) error {
	return writeVersion(env.ManifestPath, v)
}
