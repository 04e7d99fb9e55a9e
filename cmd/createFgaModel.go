// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/tracing"
)

const (
	StoreName = "agency-service"

	storeIDKey = "OPENFGA_STORE_ID"
	modelIDKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

// createFgaModelCmd writes the agency and tenant relationship model to OpenFGA
var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the agency openfga model",
	Long:  `Creates the agency openfga model, optionally creating the store and recording both ids in a configmap`,
	RunE:  runCreateFgaModel,
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("model-version", "v0", "Version of the embedded authorization model")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap receiving the store and model ids, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

type fgaModelResult struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
	Created bool   `json:"store_created"`
}

func runCreateFgaModel(cmd *cobra.Command, _ []string) error {
	apiURL, _ := cmd.Flags().GetString("fga-api-url")
	apiToken, _ := cmd.Flags().GetString("fga-api-token")
	storeID, _ := cmd.Flags().GetString("fga-store-id")
	modelVersion, _ := cmd.Flags().GetString("model-version")
	format, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	configMap, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
	kubeconfig, _ := cmd.Flags().GetString("kubeconfig")

	result, err := createModel(cmd.Context(), apiURL, apiToken, storeID, modelVersion, verbose)
	if err != nil {
		return err
	}

	if configMap != "" {
		if err := updateConfigMap(cmd.Context(), kubeconfig, configMap, result); err != nil {
			return fmt.Errorf("failed to update configmap: %w", err)
		}
	}

	if format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	}

	if result.Created {
		cmd.Printf("Created store: %s\n", result.StoreID)
	}
	cmd.Printf("Created model: %s\n", result.ModelID)

	if configMap != "" {
		cmd.Printf("ConfigMap %s updated\n", configMap)
	}

	return nil
}

func createModel(ctx context.Context, apiURL, apiToken, storeID, modelVersion string, verbose bool) (*fgaModelResult, error) {
	logger := logging.NewNoopLogger()

	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid openfga url %q", apiURL)
	}

	fgaClient, err := openfga.NewClient(
		openfga.NewConfig(u.Scheme, u.Host, storeID, apiToken, "", verbose, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(StoreName, logger), logger),
	)
	if err != nil {
		return nil, err
	}

	result := &fgaModelResult{StoreID: storeID}

	if storeID == "" {
		if result.StoreID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		result.Created = true

		if err := fgaClient.SetStoreID(ctx, result.StoreID); err != nil {
			return nil, err
		}
	}

	model := authorization.NewAuthorizationModelProvider(modelVersion).GetModel()

	result.ModelID, err = fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return result, nil
}

func kubeConfig(path string) (*rest.Config, error) {
	if path != "" {
		return clientcmd.BuildConfigFromFlags("", path)
	}

	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}

	// outside a cluster fall back to the default loading rules
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

// updateConfigMap records the store and model ids so the serve deployment can pick them up
func updateConfigMap(ctx context.Context, kubeconfigPath, resource string, result *fgaModelResult) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource %q, expected namespace/name", resource)
	}

	cfg, err := kubeConfig(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       map[string]string{storeIDKey: result.StoreID, modelIDKey: result.ModelID},
		}

		_, err = configMaps.Create(ctx, cm, metav1.CreateOptions{})
		return err
	}

	if err != nil {
		return err
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}

	cm.Data[storeIDKey] = result.StoreID
	cm.Data[modelIDKey] = result.ModelID

	_, err = configMaps.Update(ctx, cm, metav1.UpdateOptions{})
	return err
}
