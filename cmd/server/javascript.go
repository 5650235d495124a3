package main

func getJavaScript() string {
	return `
        const form = document.getElementById('compareForm');
        const file1Input = document.getElementById('file1');
        const file2Input = document.getElementById('file2');
        const fileName1 = document.getElementById('fileName1');
        const fileName2 = document.getElementById('fileName2');
        const compareBtn = document.getElementById('compareBtn');
        const loading = document.getElementById('loading');
        const results = document.getElementById('results');
        const errorDiv = document.getElementById('error');
        const statsDiv = document.getElementById('stats');
        const diffSection = document.getElementById('diffSection');
        const explanationDiv = document.getElementById('explanation');
        const historyDiv = document.getElementById('history');

        // Mostrar nombre de archivo seleccionado
        file1Input.addEventListener('change', (e) => {
            fileName1.textContent = e.target.files[0]?.name || '';
        });

        file2Input.addEventListener('change', (e) => {
            fileName2.textContent = e.target.files[0]?.name || '';
        });

        // Manejar envío del formulario
        form.addEventListener('submit', async (e) => {
            e.preventDefault();

            const file1 = file1Input.files[0];
            const file2 = file2Input.files[0];

            if (!file1 || !file2) {
                showError('Por favor selecciona ambos archivos PDF');
                return;
            }

            loading.classList.add('show');
            results.classList.remove('show');
            errorDiv.style.display = 'none';
            compareBtn.disabled = true;

            const formData = new FormData();
            formData.append('file1', file1);
            formData.append('file2', file2);
            formData.append('generate_explanation', 'true');

            try {
                const response = await fetch('/api/compare', {
                    method: 'POST',
                    body: formData
                });

                const data = await response.json();

                if (!response.ok) {
                    throw new Error(data.detail || 'Error al comparar documentos');
                }

                displayResults(data);
                loadHistory();

                // Mostrar chatbot después de comparar
                document.getElementById('chatbotContainer').classList.add('show');

            } catch (error) {
                showError('Error: ' + error.message);
            } finally {
                loading.classList.remove('show');
                compareBtn.disabled = false;
            }
        });

        function escapeHtml(text) {
            const div = document.createElement('div');
            div.textContent = text;
            return div.innerHTML;
        }

        function displayResults(data) {
            const comparison = data.comparison;
            const stats = comparison.statistics;

            statsDiv.innerHTML =
                '<div class="stat-card">' +
                    '<h4>Similitud</h4>' +
                    '<div class="value">' + (comparison.similarity_ratio * 100).toFixed(1) + '%</div>' +
                '</div>' +
                '<div class="stat-card">' +
                    '<h4>Total Diferencias</h4>' +
                    '<div class="value">' + stats.total_differences + '</div>' +
                '</div>' +
                '<div class="stat-card">' +
                    '<h4>Agregadas</h4>' +
                    '<div class="value">' + stats.added_sections + '</div>' +
                '</div>' +
                '<div class="stat-card">' +
                    '<h4>Eliminadas</h4>' +
                    '<div class="value">' + stats.deleted_sections + '</div>' +
                '</div>' +
                '<div class="stat-card">' +
                    '<h4>Modificadas</h4>' +
                    '<div class="value">' + stats.modified_sections + '</div>' +
                '</div>';

            renderDifferences(comparison.differences || []);

            if (data.explanation) {
                explanationDiv.style.display = 'block';
                explanationDiv.innerHTML =
                    '<h3>🤖 Explicación de las Diferencias (IA)</h3>' +
                    '<div class="explanation-content">' + escapeHtml(data.explanation) + '</div>';
            } else {
                explanationDiv.style.display = 'block';
                explanationDiv.innerHTML =
                    '<h3>⚠️ Explicación no disponible</h3>' +
                    '<p>La explicación con IA no está disponible. Verifica que OPENAI_API_KEY esté configurada.</p>';
            }

            results.classList.add('show');
        }

        function renderDifferences(differences) {
            if (differences.length === 0) {
                diffSection.innerHTML =
                    '<h3>✅ Sin diferencias</h3>' +
                    '<p>Los documentos tienen el mismo contenido de texto.</p>';
                return;
            }

            const typeLabels = {
                added: 'Agregado',
                deleted: 'Eliminado',
                modified: 'Modificado'
            };

            let html = '<h3>📋 Diferencias (' + differences.length + ')</h3>';
            const shown = differences.slice(0, 50);

            for (const diff of shown) {
                let lines = '';
                if (diff.type === 'modified') {
                    for (const line of diff.old_lines || []) {
                        lines += '<span class="line-deleted">- ' + escapeHtml(line) + '</span>\n';
                    }
                    for (const line of diff.new_lines || []) {
                        lines += '<span class="line-added">+ ' + escapeHtml(line) + '</span>\n';
                    }
                } else {
                    const prefix = diff.type === 'added' ? '+ ' : '- ';
                    const cls = diff.type === 'added' ? 'line-added' : 'line-deleted';
                    for (const line of diff.lines || []) {
                        lines += '<span class="' + cls + '">' + prefix + escapeHtml(line) + '</span>\n';
                    }
                }

                html +=
                    '<div class="diff-item ' + diff.type + '">' +
                        '<div class="diff-type">' + (typeLabels[diff.type] || diff.type) +
                            ' · línea ' + (diff.position + 1) + '</div>' +
                        '<div class="diff-lines">' + lines + '</div>' +
                    '</div>';
            }

            if (differences.length > shown.length) {
                html += '<p>... y ' + (differences.length - shown.length) + ' diferencias más</p>';
            }

            diffSection.innerHTML = html;
        }

        async function loadHistory() {
            try {
                const response = await fetch('/api/comparisons');
                if (!response.ok) {
                    return;
                }
                const data = await response.json();
                const entries = data.comparisons || [];

                if (entries.length === 0) {
                    historyDiv.innerHTML = '';
                    return;
                }

                let html = '<h3>🕘 Comparaciones recientes</h3>';
                for (const entry of entries) {
                    const when = new Date(entry.created_at).toLocaleString();
                    html +=
                        '<div class="history-item">' +
                            '<span>' + escapeHtml(entry.document1) + ' vs ' + escapeHtml(entry.document2) + '</span>' +
                            '<span>' + when + '</span>' +
                            '<span class="similarity">' + (entry.similarity_ratio * 100).toFixed(1) + '%</span>' +
                        '</div>';
                }
                historyDiv.innerHTML = html;
            } catch (error) {
                // La lista de historial es opcional; no interrumpe el flujo
            }
        }

        function showError(message) {
            errorDiv.textContent = message;
            errorDiv.style.display = 'block';
        }

        // ========== CHATBOT ==========
        const chatbotInput = document.getElementById('chatbotInput');
        const chatbotSendBtn = document.getElementById('chatbotSendBtn');
        const chatbotAnswerContent = document.getElementById('chatbotAnswerContent');
        const chatbotLoading = document.getElementById('chatbotLoading');

        // Enviar pregunta al presionar Enter (Shift+Enter para nueva línea)
        chatbotInput.addEventListener('keydown', (e) => {
            if (e.key === 'Enter' && !e.shiftKey) {
                e.preventDefault();
                sendChatbotQuestion();
            }
        });

        chatbotSendBtn.addEventListener('click', sendChatbotQuestion);

        // Auto-resize del textarea
        chatbotInput.addEventListener('input', function() {
            this.style.height = 'auto';
            this.style.height = (this.scrollHeight) + 'px';
        });

        async function sendChatbotQuestion() {
            const question = chatbotInput.value.trim();

            if (!question) {
                return;
            }

            chatbotInput.disabled = true;
            chatbotSendBtn.disabled = true;

            addChatbotMessage('user', question);

            chatbotInput.value = '';
            chatbotInput.style.height = 'auto';
            chatbotLoading.classList.add('show');

            try {
                const response = await fetch('/api/chat', {
                    method: 'POST',
                    headers: {
                        'Content-Type': 'application/json'
                    },
                    body: JSON.stringify({ question: question })
                });

                const data = await response.json();

                if (!response.ok) {
                    throw new Error(data.detail || 'Error al procesar la pregunta');
                }

                addChatbotMessage('assistant', data.answer);

            } catch (error) {
                addChatbotMessage('assistant', 'Error: ' + error.message);
            } finally {
                chatbotInput.disabled = false;
                chatbotSendBtn.disabled = false;
                chatbotLoading.classList.remove('show');
                chatbotInput.focus();
            }
        }

        function addChatbotMessage(role, content) {
            const messageDiv = document.createElement('div');
            messageDiv.className = 'chatbot-message ' + role;

            const label = document.createElement('div');
            label.className = 'chatbot-message-label';
            label.textContent = role === 'user' ? 'Tú' : 'Asistente';

            const contentDiv = document.createElement('div');
            contentDiv.textContent = content;

            messageDiv.appendChild(label);
            messageDiv.appendChild(contentDiv);

            chatbotAnswerContent.appendChild(messageDiv);
            chatbotAnswerContent.scrollTop = chatbotAnswerContent.scrollHeight;
        }

        loadHistory();
    `
}
