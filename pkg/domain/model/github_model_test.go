package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opus10/footing-hooks/pkg/domain/model"
)

func TestDefaultBranchProtectionBody(t *testing.T) {
	body := gt.R1(json.Marshal(model.DefaultBranchProtection(nil))).NoError(t)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(body, &decoded))

	gt.V(t, decoded["enforce_admins"]).Equal(false)
	gt.V(t, decoded["required_pull_request_reviews"]).Equal(nil)
	gt.V(t, decoded["restrictions"]).Equal(nil)

	checks := decoded["required_status_checks"].(map[string]any)
	gt.V(t, checks["strict"]).Equal(true)
	gt.V(t, checks["contexts"]).Equal([]any{
		"ci/circleci: check_changelog",
		"ci/circleci: lint",
		"ci/circleci: test",
	})
}

func TestDefaultBranchProtectionCustomChecks(t *testing.T) {
	checks := []string{"ci/circleci: test"}
	bp := model.DefaultBranchProtection(checks)
	checks[0] = "mutated"
	gt.V(t, bp.RequiredStatusChecks.Contexts).Equal([]string{"ci/circleci: test"})
}

func TestDefaultBranchProtectionEmptyChecks(t *testing.T) {
	bp := model.DefaultBranchProtection([]string{})
	gt.A(t, bp.RequiredStatusChecks.Contexts).Length(0)

	body := gt.R1(json.Marshal(bp)).NoError(t)
	gt.S(t, string(body)).Contains(`"contexts":[]`)
}

func TestNewCreateRepoInput(t *testing.T) {
	input := model.NewCreateRepoInput(model.NewProject("my-app", "my_app", "desc"))
	body := gt.R1(json.Marshal(input)).NoError(t)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(body, &decoded))
	gt.V(t, decoded).Equal(map[string]any{
		"name":               "my-app",
		"description":        "desc",
		"private":            false,
		"has_wiki":           false,
		"allow_squash_merge": false,
		"allow_merge_commit": true,
		"allow_rebase_merge": false,
	})
}

func TestDefaultCircleCISettingsBody(t *testing.T) {
	body := gt.R1(json.Marshal(model.DefaultCircleCISettings())).NoError(t)
	gt.V(t, string(body)).Equal(`{"feature_flags":{"build-prs-only":true,"build-fork-prs":true,"autocancel-builds":true}}`)
}
